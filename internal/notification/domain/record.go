package domain

import "time"

// Channel is the delivery medium a record was attempted on.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Status is the outcome of one delivery attempt.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

// Record is one immutable ledger entry per (contact, channel) delivery
// attempt. ContactName and ContactRole are snapshots taken at send time;
// later contact edits or deletion never touch them.
type Record struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"index;not null"`
	ContactID      string     `json:"contact_id" gorm:"index"`
	ContactName    string     `json:"contact_name"`
	ContactRole    string     `json:"contact_role"`
	Type           string     `json:"type"`
	Channel        Channel    `json:"channel"`
	Status         Status     `json:"status"`
	MessagePreview string     `json:"message_preview"`
	Error          string     `json:"error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
}
