package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recoverylink-backend/internal/token/domain"
)

// gormTokenRepository implements TokenRepository using GORM
type gormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GORM-based TokenRepository
func NewGormTokenRepository(db *gorm.DB) TokenRepository {
	return &gormTokenRepository{db: db}
}

func (r *gormTokenRepository) Save(token *domain.CalendarToken) error {
	if token.StoredAt.IsZero() {
		token.StoredAt = time.Now()
	}
	// Last-write-wins upsert keyed by patient id.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(token).Error
}

func (r *gormTokenRepository) FindByUserID(userID string) (*domain.CalendarToken, error) {
	var token domain.CalendarToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *gormTokenRepository) Delete(userID string) error {
	return r.db.Delete(&domain.CalendarToken{}, "user_id = ?", userID).Error
}
