package dto

// StatusCheckCreateRequest payload for recording a client ping.
type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name"`
}
