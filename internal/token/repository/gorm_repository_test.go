package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recoverylink-backend/internal/token/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.CalendarToken{}))
	return db
}

func TestSaveThenFind(t *testing.T) {
	repo := NewGormTokenRepository(testDB(t))

	expires := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(&domain.CalendarToken{
		UserID:      "patient-1",
		AccessToken: "tok-1",
		ExpiresAt:   expires,
		Scope:       "https://www.googleapis.com/auth/calendar.events",
	}))

	token, err := repo.FindByUserID("patient-1")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "tok-1", token.AccessToken)
	assert.True(t, token.ExpiresAt.Equal(expires))
	assert.False(t, token.StoredAt.IsZero())
}

func TestSaveUpsertsLastWriteWins(t *testing.T) {
	repo := NewGormTokenRepository(testDB(t))

	expires := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(&domain.CalendarToken{
		UserID:      "patient-1",
		AccessToken: "tok-old",
		ExpiresAt:   expires,
	}))
	require.NoError(t, repo.Save(&domain.CalendarToken{
		UserID:      "patient-1",
		AccessToken: "tok-new",
		ExpiresAt:   expires.Add(time.Hour),
	}))

	token, err := repo.FindByUserID("patient-1")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "tok-new", token.AccessToken)
	assert.True(t, token.ExpiresAt.Equal(expires.Add(time.Hour)))

	// Still exactly one row for the patient.
	all, err := repo.FindByUserID("patient-1")
	require.NoError(t, err)
	require.NotNil(t, all)
}

func TestFindAbsentReturnsNil(t *testing.T) {
	repo := NewGormTokenRepository(testDB(t))

	token, err := repo.FindByUserID("patient-1")
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := NewGormTokenRepository(testDB(t))

	require.NoError(t, repo.Save(&domain.CalendarToken{
		UserID:      "patient-1",
		AccessToken: "tok-1",
		ExpiresAt:   time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.Delete("patient-1"))

	token, err := repo.FindByUserID("patient-1")
	require.NoError(t, err)
	assert.Nil(t, token)

	// Deleting an absent credential is not an error.
	require.NoError(t, repo.Delete("patient-1"))
}
