package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recoverylink-backend/internal/schedule/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ScheduleGuard{}))
	return db
}

func TestGuardExistsAfterCreate(t *testing.T) {
	repo := NewGormGuardRepository(testDB(t))

	exists, err := repo.Exists("patient-1", "session-1")
	require.NoError(t, err)
	assert.False(t, exists)

	guard := &domain.ScheduleGuard{UserID: "patient-1", SessionID: "session-1"}
	require.NoError(t, repo.Create(guard))
	assert.NotEmpty(t, guard.ID)
	assert.False(t, guard.CreatedAt.IsZero())

	exists, err = repo.Exists("patient-1", "session-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGuardScopedToPatientAndSession(t *testing.T) {
	repo := NewGormGuardRepository(testDB(t))

	require.NoError(t, repo.Create(&domain.ScheduleGuard{UserID: "patient-1", SessionID: "session-1"}))

	exists, err := repo.Exists("patient-1", "session-2")
	require.NoError(t, err)
	assert.False(t, exists, "different session is not guarded")

	exists, err = repo.Exists("patient-2", "session-1")
	require.NoError(t, err)
	assert.False(t, exists, "same session id under another patient is not guarded")
}
