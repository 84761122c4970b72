package domain

import "time"

// ExerciseSchedule is one prescribed exercise as it arrives from the
// coaching plan: a frequency descriptor plus session parameters.
type ExerciseSchedule struct {
	Name            string   `json:"name"`
	Instructions    []string `json:"instructions"`
	SetsReps        string   `json:"sets_reps"`
	Frequency       string   `json:"frequency"`
	StartTime       string   `json:"start_time"` // local time-of-day, "15:04"
	DurationMinutes int      `json:"duration_minutes"`
}

// EventInstance is one concrete dated calendar event produced by expanding
// a prescription. EventID and HTMLLink are filled in after submission.
type EventInstance struct {
	ExerciseName string    `json:"exercise_name"`
	Summary      string    `json:"summary"`
	Description  string    `json:"description"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Timezone     string    `json:"timezone"`
	EventID      string    `json:"event_id,omitempty"`
	HTMLLink     string    `json:"html_link,omitempty"`
}

// ScheduleGuard marks that a session's prescription has already been
// expanded into calendar events. Presence is the idempotency gate; guards
// are only ever created or read, never updated.
type ScheduleGuard struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	SessionID string    `json:"session_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
