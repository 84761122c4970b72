package repository

import "recoverylink-backend/internal/contact/domain"

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact, assigning an id if absent
	Create(contact *domain.Contact) error

	// FindByID finds a contact by its ID, nil if absent
	FindByID(id string) (*domain.Contact, error)

	// FindByUserID finds all contacts for a patient, newest-created first
	FindByUserID(userID string) ([]*domain.Contact, error)

	// Update persists an existing contact
	Update(contact *domain.Contact) error

	// Delete removes a contact permanently
	Delete(id string) error
}
