package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recoverylink-backend/internal/notification/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Record{}))
	return db
}

func TestCreateMintsID(t *testing.T) {
	repo := NewGormNotificationRepository(testDB(t))

	record := &domain.Record{
		UserID:      "patient-1",
		ContactID:   "contact-1",
		ContactName: "Dana",
		Type:        "analysis_update",
		Channel:     domain.ChannelSMS,
		Status:      domain.StatusSent,
	}
	require.NoError(t, repo.Create(record))

	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestFindByUserIDNewestFirstWithLimit(t *testing.T) {
	repo := NewGormNotificationRepository(testDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := &domain.Record{
			UserID:    "patient-1",
			Type:      "analysis_update",
			Channel:   domain.ChannelEmail,
			Status:    domain.StatusSent,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		record.MessagePreview = fmt.Sprintf("update %d", i)
		require.NoError(t, repo.Create(record))
	}
	require.NoError(t, repo.Create(&domain.Record{
		UserID:    "patient-2",
		Type:      "doctor_flag",
		Channel:   domain.ChannelSMS,
		Status:    domain.StatusFailed,
		CreatedAt: base.Add(time.Hour),
	}))

	records, err := repo.FindByUserID("patient-1", 3)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "update 4", records[0].MessagePreview)
	assert.Equal(t, "update 3", records[1].MessagePreview)
	assert.Equal(t, "update 2", records[2].MessagePreview)
	for _, record := range records {
		assert.Equal(t, "patient-1", record.UserID)
	}
}

func TestFindByUserIDZeroLimitReturnsAll(t *testing.T) {
	repo := NewGormNotificationRepository(testDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(&domain.Record{
			UserID:    "patient-1",
			Type:      "weekly_summary",
			Channel:   domain.ChannelEmail,
			Status:    domain.StatusSent,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := repo.FindByUserID("patient-1", 0)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestFindByUserIDEmpty(t *testing.T) {
	repo := NewGormNotificationRepository(testDB(t))

	records, err := repo.FindByUserID("patient-1", 50)
	require.NoError(t, err)
	assert.Empty(t, records)
}
