package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	contactdomain "recoverylink-backend/internal/contact/domain"
	"recoverylink-backend/internal/notification/dispatcher"
	"recoverylink-backend/internal/schedule/domain"
	"recoverylink-backend/internal/schedule/repository"
	"recoverylink-backend/pkg/apperror"
	"recoverylink-backend/pkg/gcal"
)

// scheduleUsecase implements ScheduleUsecase interface
type scheduleUsecase struct {
	guardRepo     repository.GuardRepository
	tokens        TokenProvider
	calendar      CalendarClient
	dispatcher    *dispatcher.Dispatcher
	submitTimeout time.Duration
}

// NewScheduleUsecase creates the recurrence expansion engine. The dispatcher
// is optional; when present, a successful expansion queues a care-team
// broadcast without blocking on it.
func NewScheduleUsecase(
	guardRepo repository.GuardRepository,
	tokens TokenProvider,
	calendar CalendarClient,
	d *dispatcher.Dispatcher,
) ScheduleUsecase {
	return &scheduleUsecase{
		guardRepo:     guardRepo,
		tokens:        tokens,
		calendar:      calendar,
		dispatcher:    d,
		submitTimeout: 15 * time.Second,
	}
}

func (u *scheduleUsecase) CreateSchedule(ctx context.Context, patientID, sessionID string, exercises []domain.ExerciseSchedule, analysisDate time.Time, timezone string, weeks int) ([]*domain.EventInstance, error) {
	if sessionID == "" {
		return nil, &apperror.ValidationError{Field: "session_id"}
	}
	if len(exercises) == 0 {
		return nil, &apperror.ValidationError{Field: "exercises"}
	}
	if weeks < 1 {
		return nil, &apperror.ValidationError{Field: "weeks"}
	}

	// Idempotency gate: one expansion per originating analysis session.
	// Best-effort check-then-write; a rare concurrent duplicate is accepted.
	exists, err := u.guardRepo.Exists(patientID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check schedule guard: %w", err)
	}
	if exists {
		return nil, &apperror.DuplicateError{Entity: "schedule", Key: sessionID}
	}

	accessToken, err := u.tokens.ValidAccessToken(patientID)
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, &apperror.ValidationError{Field: "timezone"}
	}

	// Expand every exercise before submitting anything: a parse failure on
	// any exercise aborts the whole request, so no partial calendar is
	// created for one prescription.
	var instances []*domain.EventInstance
	anchor := analysisDate.In(location)
	for _, exercise := range exercises {
		expanded, err := expandExercise(exercise, anchor, location, timezone, weeks)
		if err != nil {
			return nil, err
		}
		instances = append(instances, expanded...)
	}

	// Submissions go out in temporal order and fail fast: later instances
	// are not worth creating once the sequence is inconsistent.
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].Start.Before(instances[j].Start)
	})

	for i, instance := range instances {
		created, err := u.submit(ctx, accessToken, instance)
		if err != nil {
			return nil, &apperror.CalendarSubmissionError{Succeeded: i, Attempted: len(instances), Err: err}
		}
		instance.EventID = created.EventID
		instance.HTMLLink = created.HTMLLink
	}

	// The guard is written only after every instance succeeded, so a failed
	// expansion stays retryable.
	guard := &domain.ScheduleGuard{UserID: patientID, SessionID: sessionID}
	if err := u.guardRepo.Create(guard); err != nil {
		return nil, fmt.Errorf("failed to write schedule guard: %w", err)
	}

	log.Printf("[Schedule] Created %d calendar events for patient %s session %s", len(instances), patientID, sessionID)

	if u.dispatcher != nil {
		u.dispatcher.Enqueue(dispatcher.Job{
			PatientID: patientID,
			Type:      string(contactdomain.TypeAppointmentReminder),
			Subject:   "Exercise schedule created",
			Message:   fmt.Sprintf("%d exercise sessions were added to the recovery calendar over the next %d weeks.", len(instances), weeks),
		})
	}

	return instances, nil
}

func (u *scheduleUsecase) submit(ctx context.Context, accessToken string, instance *domain.EventInstance) (*gcal.CreatedEvent, error) {
	submitCtx, cancel := context.WithTimeout(ctx, u.submitTimeout)
	defer cancel()

	return u.calendar.CreateEvent(submitCtx, accessToken, gcal.EventRequest{
		Summary:     instance.Summary,
		Description: instance.Description,
		Start:       instance.Start,
		End:         instance.End,
		Timezone:    instance.Timezone,
	})
}

// expandExercise turns one prescription into dated instances across the
// horizon. The anchor weekday is offset 0 of each week.
func expandExercise(exercise domain.ExerciseSchedule, anchor time.Time, location *time.Location, timezone string, weeks int) ([]*domain.EventInstance, error) {
	offsets, err := parseFrequency(exercise.Frequency)
	if err != nil {
		return nil, &apperror.ParseError{Exercise: exercise.Name, Descriptor: exercise.Frequency}
	}

	hour, minute, err := parseStartTime(exercise.StartTime)
	if err != nil {
		return nil, &apperror.ValidationError{Field: fmt.Sprintf("start_time for exercise %q", exercise.Name)}
	}

	duration := time.Duration(exercise.DurationMinutes) * time.Minute
	if duration <= 0 {
		duration = 30 * time.Minute
	}

	summary := fmt.Sprintf("Exercise: %s", exercise.Name)
	description := buildDescription(exercise)

	var instances []*domain.EventInstance
	for week := 0; week < weeks; week++ {
		for _, offset := range offsets {
			day := anchor.AddDate(0, 0, week*7+offset)
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, location)
			instances = append(instances, &domain.EventInstance{
				ExerciseName: exercise.Name,
				Summary:      summary,
				Description:  description,
				Start:        start,
				End:          start.Add(duration),
				Timezone:     timezone,
			})
		}
	}
	return instances, nil
}

func parseStartTime(value string) (int, int, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid start time %q", value)
}

func buildDescription(exercise domain.ExerciseSchedule) string {
	var b strings.Builder
	if exercise.SetsReps != "" {
		fmt.Fprintf(&b, "Sets/Reps: %s\n", exercise.SetsReps)
	}
	if len(exercise.Instructions) > 0 {
		b.WriteString("Instructions:\n")
		for i, step := range exercise.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
