package domain

import "time"

// ExpirySkew is subtracted from expires_at when checking validity so a token
// is never handed to a downstream call that might outlive it.
const ExpirySkew = 5 * time.Minute

// CalendarToken is the external calendar credential for one patient.
// One per patient, last write wins. The secret never serializes to JSON.
type CalendarToken struct {
	UserID      string    `json:"user_id" gorm:"primaryKey"`
	AccessToken string    `json:"-" gorm:"not null"`
	ExpiresAt   time.Time `json:"expires_at"`
	Scope       string    `json:"scope"`
	StoredAt    time.Time `json:"stored_at"`
}

// Expired reports whether the token is unusable at the given instant,
// including the safety skew. An expired token is treated as absent.
func (t *CalendarToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt.Add(-ExpirySkew))
}
