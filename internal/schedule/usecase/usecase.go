package usecase

import (
	"context"
	"time"

	"recoverylink-backend/internal/schedule/domain"
	"recoverylink-backend/pkg/gcal"
)

// CalendarClient is the external calendar collaborator: one create-event
// call per instance.
type CalendarClient interface {
	CreateEvent(ctx context.Context, accessToken string, req gcal.EventRequest) (*gcal.CreatedEvent, error)
}

// TokenProvider gates expansion on a valid stored calendar credential.
type TokenProvider interface {
	ValidAccessToken(patientID string) (string, error)
}

// ScheduleUsecase defines the recurrence expansion engine
type ScheduleUsecase interface {
	// CreateSchedule expands a prescription into concrete calendar events
	// and submits them in temporal order, fail-fast. Idempotent per
	// (patient, session): a repeat call fails with DuplicateError and
	// creates nothing.
	CreateSchedule(ctx context.Context, patientID, sessionID string, exercises []domain.ExerciseSchedule, analysisDate time.Time, timezone string, weeks int) ([]*domain.EventInstance, error)
}
