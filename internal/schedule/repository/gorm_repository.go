package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recoverylink-backend/internal/schedule/domain"
)

// gormGuardRepository implements GuardRepository using GORM
type gormGuardRepository struct {
	db *gorm.DB
}

// NewGormGuardRepository creates a new GORM-based GuardRepository
func NewGormGuardRepository(db *gorm.DB) GuardRepository {
	return &gormGuardRepository{db: db}
}

func (r *gormGuardRepository) Create(guard *domain.ScheduleGuard) error {
	if guard.ID == "" {
		guard.ID = uuid.New().String()
	}
	if guard.CreatedAt.IsZero() {
		guard.CreatedAt = time.Now()
	}
	return r.db.Create(guard).Error
}

func (r *gormGuardRepository) Exists(userID, sessionID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ScheduleGuard{}).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
