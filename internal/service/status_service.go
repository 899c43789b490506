package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

const statusCheckListLimit = 1000

// StatusService records and lists client status-check pings.
type StatusService struct {
	checks     repository.StatusCheckRepository
	dispatcher events.Dispatcher
}

// NewStatusService builds the service.
func NewStatusService(checks repository.StatusCheckRepository, dispatcher events.Dispatcher) *StatusService {
	return &StatusService{checks: checks, dispatcher: dispatcher}
}

// Record stores a new status check for the named client.
func (s *StatusService) Record(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	if clientName == "" {
		return nil, apperrors.NewValidationError("client_name required", nil)
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.checks.Create(ctx, check); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStatusCheckRecorded,
			EntityID:  check.ID,
			Timestamp: check.Timestamp,
			Payload:   events.StatusCheckRecordedPayload{ClientName: clientName},
		})
	}
	return check, nil
}

// List returns the most recent status checks.
func (s *StatusService) List(ctx context.Context) ([]domain.StatusCheck, error) {
	return s.checks.List(ctx, statusCheckListLimit)
}
