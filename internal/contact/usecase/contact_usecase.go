package usecase

import (
	"fmt"

	"recoverylink-backend/internal/contact/domain"
	"recoverylink-backend/internal/contact/dto"
	"recoverylink-backend/internal/contact/repository"
	"recoverylink-backend/pkg/apperror"
)

// contactUsecase implements ContactUsecase interface
type contactUsecase struct {
	contactRepo repository.ContactRepository
}

// NewContactUsecase creates a new instance of contactUsecase
func NewContactUsecase(contactRepo repository.ContactRepository) ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo}
}

func (u *contactUsecase) Register(patientID string, req *dto.CreateContactRequest) (*domain.Contact, error) {
	if req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name"}
	}
	if req.Relationship == "" {
		return nil, &apperror.ValidationError{Field: "relationship"}
	}
	if req.Role == "" || !domain.ValidRole(domain.Role(req.Role)) {
		return nil, &apperror.ValidationError{Field: "role"}
	}
	if req.Phone == "" && req.Email == "" {
		return nil, &apperror.ValidationError{Field: "phone or email"}
	}

	prefs := domain.DefaultNotificationPrefs()
	for name, enabled := range req.Notifications {
		t := domain.NotificationType(name)
		if !domain.ValidNotificationType(t) {
			return nil, &apperror.ValidationError{Field: "notifications." + name}
		}
		prefs.Set(t, enabled)
	}

	// Channel flags default to reachability-field presence unless overridden.
	channels := domain.ChannelFlags{
		SMS:   req.Phone != "",
		Email: req.Email != "",
	}
	if req.Channels != nil {
		if req.Channels.SMS != nil {
			channels.SMS = *req.Channels.SMS
		}
		if req.Channels.Email != nil {
			channels.Email = *req.Channels.Email
		}
	}

	frequency := domain.FrequencyRealtime
	if req.Frequency != "" {
		frequency = domain.Frequency(req.Frequency)
	}
	dataAccess := domain.AccessBasic
	if req.DataAccess != "" {
		dataAccess = domain.DataAccessLevel(req.DataAccess)
	}

	contact := &domain.Contact{
		UserID:        patientID,
		Name:          req.Name,
		Relationship:  req.Relationship,
		Role:          domain.Role(req.Role),
		Organization:  req.Organization,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Email:         req.Email,
		Notifications: prefs,
		Channels:      channels,
		Frequency:     frequency,
		DataAccess:    dataAccess,
	}

	if err := u.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

func (u *contactUsecase) List(patientID string) ([]*domain.Contact, error) {
	contacts, err := u.contactRepo.FindByUserID(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []*domain.Contact{}
	}
	return contacts, nil
}

func (u *contactUsecase) Get(patientID, contactID string) (*domain.Contact, error) {
	contact, err := u.contactRepo.FindByID(contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	// A contact owned by another patient is reported as absent, not forbidden.
	if contact == nil || contact.UserID != patientID {
		return nil, &apperror.NotFoundError{Entity: "contact", ID: contactID}
	}
	return contact, nil
}

func (u *contactUsecase) Update(patientID, contactID string, req *dto.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := u.Get(patientID, contactID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Relationship != nil {
		contact.Relationship = *req.Relationship
	}
	if req.Role != nil {
		if !domain.ValidRole(domain.Role(*req.Role)) {
			return nil, &apperror.ValidationError{Field: "role"}
		}
		contact.Role = domain.Role(*req.Role)
	}
	if req.Organization != nil {
		contact.Organization = *req.Organization
	}
	if req.LicenseNumber != nil {
		contact.LicenseNumber = *req.LicenseNumber
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if contact.Phone == "" && contact.Email == "" {
		return nil, &apperror.ValidationError{Field: "phone or email"}
	}

	for name, enabled := range req.Notifications {
		t := domain.NotificationType(name)
		if !domain.ValidNotificationType(t) {
			return nil, &apperror.ValidationError{Field: "notifications." + name}
		}
		contact.Notifications.Set(t, enabled)
	}

	if req.Channels != nil {
		if req.Channels.SMS != nil {
			contact.Channels.SMS = *req.Channels.SMS
		}
		if req.Channels.Email != nil {
			contact.Channels.Email = *req.Channels.Email
		}
	}

	if req.Frequency != nil {
		contact.Frequency = domain.Frequency(*req.Frequency)
	}
	if req.DataAccess != nil {
		contact.DataAccess = domain.DataAccessLevel(*req.DataAccess)
	}

	if err := u.contactRepo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

func (u *contactUsecase) Delete(patientID, contactID string) error {
	contact, err := u.Get(patientID, contactID)
	if err != nil {
		return err
	}
	if err := u.contactRepo.Delete(contact.ID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
