package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recoverylink-backend/internal/contact/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Contact{}))
	return db
}

func storedContact(userID, name string, createdAt time.Time) *domain.Contact {
	return &domain.Contact{
		UserID:        userID,
		Name:          name,
		Relationship:  "sister",
		Role:          domain.RoleFamily,
		Phone:         "+15551230001",
		Notifications: domain.DefaultNotificationPrefs(),
		Channels:      domain.ChannelFlags{SMS: true},
		Frequency:     domain.FrequencyRealtime,
		DataAccess:    domain.AccessBasic,
		CreatedAt:     createdAt,
	}
}

func TestCreateMintsIDAndTimestamps(t *testing.T) {
	repo := NewGormContactRepository(testDB(t))

	contact := storedContact("patient-1", "Dana", time.Time{})
	require.NoError(t, repo.Create(contact))

	assert.NotEmpty(t, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())
	assert.False(t, contact.UpdatedAt.IsZero())

	loaded, err := repo.FindByID(contact.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Dana", loaded.Name)
	assert.True(t, loaded.Notifications.AnalysisUpdate)
	assert.True(t, loaded.Channels.SMS)
}

func TestFindByIDAbsentReturnsNil(t *testing.T) {
	repo := NewGormContactRepository(testDB(t))

	loaded, err := repo.FindByID("missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFindByUserIDOrdersNewestFirst(t *testing.T) {
	repo := NewGormContactRepository(testDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(storedContact("patient-1", "oldest", base)))
	require.NoError(t, repo.Create(storedContact("patient-1", "newest", base.Add(2*time.Hour))))
	require.NoError(t, repo.Create(storedContact("patient-1", "middle", base.Add(time.Hour))))
	require.NoError(t, repo.Create(storedContact("patient-2", "other patient", base.Add(3*time.Hour))))

	contacts, err := repo.FindByUserID("patient-1")
	require.NoError(t, err)

	require.Len(t, contacts, 3)
	assert.Equal(t, "newest", contacts[0].Name)
	assert.Equal(t, "middle", contacts[1].Name)
	assert.Equal(t, "oldest", contacts[2].Name)
}

func TestUpdatePersistsChanges(t *testing.T) {
	repo := NewGormContactRepository(testDB(t))

	contact := storedContact("patient-1", "Dana", time.Time{})
	require.NoError(t, repo.Create(contact))

	contact.Name = "Dana R."
	contact.Notifications.ProgressMilestone = true
	require.NoError(t, repo.Update(contact))

	loaded, err := repo.FindByID(contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana R.", loaded.Name)
	assert.True(t, loaded.Notifications.ProgressMilestone)
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := NewGormContactRepository(testDB(t))

	contact := storedContact("patient-1", "Dana", time.Time{})
	require.NoError(t, repo.Create(contact))

	require.NoError(t, repo.Delete(contact.ID))

	loaded, err := repo.FindByID(contact.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
