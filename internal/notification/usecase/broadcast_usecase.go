package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	contactdomain "recoverylink-backend/internal/contact/domain"
	contactrepo "recoverylink-backend/internal/contact/repository"
	"recoverylink-backend/internal/notification/domain"
	"recoverylink-backend/internal/notification/repository"
	"recoverylink-backend/pkg/apperror"
)

const (
	previewLength = 160
	smsMaxLength  = 320
)

// broadcastUsecase implements NotificationUsecase interface
type broadcastUsecase struct {
	contactRepo contactrepo.ContactRepository
	recordRepo  repository.NotificationRepository
	sms         SMSSender
	email       EmailSender
	workers     int
	sendTimeout time.Duration
}

// NewNotificationUsecase creates the fan-out engine. Senders may be nil when
// a provider is not configured; attempts on that channel then fail into the
// ledger like any other send error.
func NewNotificationUsecase(
	contactRepo contactrepo.ContactRepository,
	recordRepo repository.NotificationRepository,
	sms SMSSender,
	email EmailSender,
	workers int,
	sendTimeout time.Duration,
) NotificationUsecase {
	if workers <= 0 {
		workers = 5
	}
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &broadcastUsecase{
		contactRepo: contactRepo,
		recordRepo:  recordRepo,
		sms:         sms,
		email:       email,
		workers:     workers,
		sendTimeout: sendTimeout,
	}
}

// attempt is one (contact, channel) pair selected for delivery.
type attempt struct {
	contact *contactdomain.Contact
	channel domain.Channel
}

func (u *broadcastUsecase) Broadcast(ctx context.Context, patientID, notifType, subject, message string) ([]*domain.Record, error) {
	t := contactdomain.NotificationType(notifType)
	if !contactdomain.ValidNotificationType(t) {
		return nil, &apperror.ValidationError{Field: "type"}
	}

	contacts, err := u.contactRepo.FindByUserID(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	// Eligibility: subscribed to the type, and at least one channel whose
	// flag is on with the matching field present. Contacts that fail either
	// test are skipped with no ledger entry.
	var attempts []attempt
	for _, contact := range contacts {
		if !contact.Notifications.Enabled(t) {
			continue
		}
		if contact.CanReceiveSMS() {
			attempts = append(attempts, attempt{contact: contact, channel: domain.ChannelSMS})
		}
		if contact.CanReceiveEmail() {
			attempts = append(attempts, attempt{contact: contact, channel: domain.ChannelEmail})
		}
	}

	records := make([]*domain.Record, len(attempts))

	// Sends are independent and best-effort; run them on a bounded pool and
	// join before returning. One failure never stops the others.
	var wg sync.WaitGroup
	sem := make(chan struct{}, u.workers)
	for i, a := range attempts {
		wg.Add(1)
		go func(i int, a attempt) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			records[i] = u.deliver(ctx, a, notifType, subject, message)
		}(i, a)
	}
	wg.Wait()

	// Ledger writes happen once per resolved attempt; a store failure here
	// is logged, not propagated, so it cannot duplicate entries on retry.
	for _, record := range records {
		if err := u.recordRepo.Create(record); err != nil {
			log.Printf("[Broadcast] Failed to write ledger entry for contact %s: %v", record.ContactID, err)
		}
	}

	if len(attempts) > 0 {
		log.Printf("[Broadcast] %s for patient %s: %d attempts", notifType, patientID, len(attempts))
	}

	return records, nil
}

// deliver runs one send attempt and builds its ledger record.
func (u *broadcastUsecase) deliver(ctx context.Context, a attempt, notifType, subject, message string) *domain.Record {
	record := &domain.Record{
		UserID:      a.contact.UserID,
		ContactID:   a.contact.ID,
		ContactName: a.contact.Name,
		ContactRole: string(a.contact.Role),
		Type:        notifType,
		Channel:     a.channel,
	}

	sendCtx, cancel := context.WithTimeout(ctx, u.sendTimeout)
	defer cancel()

	var err error
	switch a.channel {
	case domain.ChannelSMS:
		text := truncate(subject+": "+message, smsMaxLength)
		record.MessagePreview = truncate(text, previewLength)
		if u.sms == nil {
			err = fmt.Errorf("sms provider not configured")
		} else {
			err = u.sms.SendSMS(sendCtx, a.contact.Phone, text)
		}
	case domain.ChannelEmail:
		record.MessagePreview = truncate(message, previewLength)
		if u.email == nil {
			err = fmt.Errorf("email provider not configured")
		} else {
			err = u.email.SendEmail(sendCtx, a.contact.Email, subject, message)
		}
	}

	if err != nil {
		record.Status = domain.StatusFailed
		record.Error = err.Error()
		log.Printf("[Broadcast] %s to %s failed: %v", a.channel, a.contact.ID, err)
	} else {
		now := time.Now()
		record.Status = domain.StatusSent
		record.SentAt = &now
	}

	return record
}

func (u *broadcastUsecase) History(patientID string, limit int) ([]*domain.Record, error) {
	records, err := u.recordRepo.FindByUserID(patientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification history: %w", err)
	}
	if records == nil {
		records = []*domain.Record{}
	}
	return records, nil
}

// truncate caps s at max runes, never splitting a multi-byte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
