package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recoverylink-backend/internal/contact/domain"
)

// gormContactRepository implements ContactRepository using GORM
type gormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM-based ContactRepository
func NewGormContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

func (r *gormContactRepository) Create(contact *domain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	now := time.Now()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	contact.UpdatedAt = now
	return r.db.Create(contact).Error
}

func (r *gormContactRepository) FindByID(id string) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *gormContactRepository) FindByUserID(userID string) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	if err := r.db.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		return nil, err
	}

	// Ordering is the registry's responsibility, not the store's: equality
	// fetch, then sort newest-created first.
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})

	return contacts, nil
}

func (r *gormContactRepository) Update(contact *domain.Contact) error {
	contact.UpdatedAt = time.Now()
	return r.db.Save(contact).Error
}

func (r *gormContactRepository) Delete(id string) error {
	return r.db.Delete(&domain.Contact{}, "id = ?", id).Error
}
