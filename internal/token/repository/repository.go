package repository

import "recoverylink-backend/internal/token/domain"

// TokenRepository defines the interface for calendar token storage
type TokenRepository interface {
	// Save stores the patient's token, replacing any existing one
	Save(token *domain.CalendarToken) error

	// FindByUserID returns the patient's token, nil if absent
	FindByUserID(userID string) (*domain.CalendarToken, error)

	// Delete removes the patient's token; absent is not an error
	Delete(userID string) error
}
