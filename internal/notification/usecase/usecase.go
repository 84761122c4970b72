package usecase

import (
	"context"

	"recoverylink-backend/internal/notification/domain"
)

// SMSSender delivers one text message through the messaging provider.
type SMSSender interface {
	SendSMS(ctx context.Context, toPhone, text string) error
}

// EmailSender delivers one email through the messaging provider.
type EmailSender interface {
	SendEmail(ctx context.Context, toAddress, subject, body string) error
}

// NotificationUsecase defines the broadcast fan-out engine and ledger reads
type NotificationUsecase interface {
	// Broadcast fans one notification out to every eligible (contact,
	// channel) pair and returns one ledger record per attempt. Individual
	// send failures are captured in the records, never returned as an
	// error; the call only errors when the contact registry read fails.
	Broadcast(ctx context.Context, patientID, notifType, subject, message string) ([]*domain.Record, error)

	// History returns the patient's ledger, newest first
	History(patientID string, limit int) ([]*domain.Record, error)
}
