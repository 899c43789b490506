package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/events"
)

// AuditService writes a structured audit line for every domain event.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to all catalog events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventProductCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventProductUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventProductDeleted, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStatusCheckRecorded, a.handleEvent)
}

func (a *AuditService) handleEvent(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event", string(event.Type)),
		zap.String("entity_id", event.EntityID),
		zap.String("subject", event.Subject),
		zap.Any("payload", event.Payload),
	)
	return nil
}
