package usecase

import (
	"context"
	"time"

	"recoverylink-backend/internal/token/domain"
)

// TokenUsecase defines the calendar token lifecycle: storage, expiry gating
// and revocation. It never performs the OAuth handshake itself beyond
// delegating a code exchange to the calendar provider client.
type TokenUsecase interface {
	// AuthURL returns the provider consent URL for the minimal scope
	AuthURL(state string) string

	// ExchangeCode trades an authorization code for a token and stores it
	ExchangeCode(ctx context.Context, patientID, code string) (*domain.CalendarToken, error)

	// Store saves a raw token unconditionally (last-write-wins)
	Store(patientID, accessToken string, expiresIn int) (*domain.CalendarToken, error)

	// Status reports whether a usable token exists and when it expires
	Status(patientID string) (bool, *time.Time, error)

	// ValidAccessToken returns the stored credential if present and not
	// within the expiry skew, otherwise a TokenError
	ValidAccessToken(patientID string) (string, error)

	// Revoke deletes the patient's token permanently
	Revoke(patientID string) error
}
