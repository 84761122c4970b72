package repository

import "recoverylink-backend/internal/schedule/domain"

// GuardRepository defines the interface for schedule guard storage
type GuardRepository interface {
	// Create writes the guard for a (patient, session) pair
	Create(guard *domain.ScheduleGuard) error

	// Exists reports whether a guard is present for the pair
	Exists(userID, sessionID string) (bool, error)
}
