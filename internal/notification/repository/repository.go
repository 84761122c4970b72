package repository

import "recoverylink-backend/internal/notification/domain"

// NotificationRepository defines the interface for the delivery ledger.
// Entries are append-only; nothing in this service ever deletes one.
type NotificationRepository interface {
	// Create appends one ledger entry, assigning an id if absent
	Create(record *domain.Record) error

	// FindByUserID returns up to limit entries for a patient, newest first.
	// limit <= 0 means no cap.
	FindByUserID(userID string, limit int) ([]*domain.Record, error)
}
