package usecase

import (
	"recoverylink-backend/internal/contact/domain"
	"recoverylink-backend/internal/contact/dto"
)

// ContactUsecase defines the interface for the care-team contact registry
type ContactUsecase interface {
	// Register creates a contact for a patient, applying subscription and
	// channel defaults
	Register(patientID string, req *dto.CreateContactRequest) (*domain.Contact, error)

	// List returns a patient's contacts, newest-created first
	List(patientID string) ([]*domain.Contact, error)

	// Get retrieves a single contact with ownership check
	Get(patientID, contactID string) (*domain.Contact, error)

	// Update applies a partial update, never touching system fields
	Update(patientID, contactID string, req *dto.UpdateContactRequest) (*domain.Contact, error)

	// Delete permanently removes a contact; the notification ledger keeps
	// its historical entries for the contact untouched
	Delete(patientID, contactID string) error
}
