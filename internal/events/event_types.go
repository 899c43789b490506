package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated      EventType = "product_created"
	EventProductUpdated      EventType = "product_updated"
	EventProductDeleted      EventType = "product_deleted"
	EventStatusCheckRecorded EventType = "status_check_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Subject   string      `json:"subject,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProductCreatedPayload payload.
type ProductCreatedPayload struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Featured bool    `json:"featured"`
}

// ProductUpdatedPayload payload listing the fields the patch touched.
type ProductUpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}

// ProductDeletedPayload payload.
type ProductDeletedPayload struct {
	Name string `json:"name"`
}

// StatusCheckRecordedPayload payload.
type StatusCheckRecordedPayload struct {
	ClientName string `json:"client_name"`
}
