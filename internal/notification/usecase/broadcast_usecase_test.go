package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactdomain "recoverylink-backend/internal/contact/domain"
	"recoverylink-backend/internal/notification/domain"
	"recoverylink-backend/pkg/apperror"
)

type fakeContactRepo struct {
	contacts []*contactdomain.Contact
	findErr  error
}

func (r *fakeContactRepo) Create(contact *contactdomain.Contact) error { return nil }
func (r *fakeContactRepo) FindByID(id string) (*contactdomain.Contact, error) {
	return nil, nil
}
func (r *fakeContactRepo) FindByUserID(userID string) ([]*contactdomain.Contact, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.contacts, nil
}
func (r *fakeContactRepo) Update(contact *contactdomain.Contact) error { return nil }
func (r *fakeContactRepo) Delete(id string) error                      { return nil }

type fakeRecordRepo struct {
	records   []*domain.Record
	createErr error
}

func (r *fakeRecordRepo) Create(record *domain.Record) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.records = append(r.records, record)
	return nil
}

func (r *fakeRecordRepo) FindByUserID(userID string, limit int) ([]*domain.Record, error) {
	return r.records, nil
}

// Senders are called concurrently by the worker pool, so the fakes lock.
type fakeSMSSender struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *fakeSMSSender) SendSMS(ctx context.Context, toPhone, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, toPhone)
	return s.err
}

type fakeEmailSender struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *fakeEmailSender) SendEmail(ctx context.Context, toAddress, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, toAddress)
	return s.err
}

func familyContact() *contactdomain.Contact {
	return &contactdomain.Contact{
		ID:           "contact-1",
		UserID:       "patient-1",
		Name:         "Dana Rivera",
		Relationship: "sister",
		Role:         contactdomain.RoleFamily,
		Phone:        "+15551230001",
		Email:        "dana@example.com",
		Notifications: contactdomain.NotificationPrefs{
			AnalysisUpdate: true,
			WeeklySummary:  true,
			DoctorFlag:     true,
		},
		Channels: contactdomain.ChannelFlags{SMS: true, Email: true},
	}
}

func newTestEngine(contacts *fakeContactRepo, records *fakeRecordRepo, sms *fakeSMSSender, email *fakeEmailSender) NotificationUsecase {
	return NewNotificationUsecase(contacts, records, sms, email, 3, time.Second)
}

func TestBroadcastSkipsUnsubscribedContacts(t *testing.T) {
	contact := familyContact()
	contact.Notifications.AnalysisUpdate = false

	records := &fakeRecordRepo{}
	sms := &fakeSMSSender{}
	email := &fakeEmailSender{}
	uc := newTestEngine(&fakeContactRepo{contacts: []*contactdomain.Contact{contact}}, records, sms, email)

	result, err := uc.Broadcast(context.Background(), "patient-1", "analysis_update", "Update", "Gait improved")
	require.NoError(t, err)

	assert.Empty(t, result)
	assert.Empty(t, records.records, "ineligible contacts leave no ledger entry")
	assert.Empty(t, sms.calls)
	assert.Empty(t, email.calls)
}

func TestBroadcastBothChannelsProduceTwoRecords(t *testing.T) {
	records := &fakeRecordRepo{}
	sms := &fakeSMSSender{}
	email := &fakeEmailSender{err: errors.New("mailbox unavailable")}
	uc := newTestEngine(&fakeContactRepo{contacts: []*contactdomain.Contact{familyContact()}}, records, sms, email)

	result, err := uc.Broadcast(context.Background(), "patient-1", "analysis_update", "Update", "Gait improved")
	require.NoError(t, err)

	// One entry per channel regardless of individual outcomes.
	require.Len(t, result, 2)
	require.Len(t, records.records, 2)

	byChannel := map[domain.Channel]*domain.Record{}
	for _, record := range result {
		byChannel[record.Channel] = record
	}
	require.Contains(t, byChannel, domain.ChannelSMS)
	require.Contains(t, byChannel, domain.ChannelEmail)

	assert.Equal(t, domain.StatusSent, byChannel[domain.ChannelSMS].Status)
	assert.NotNil(t, byChannel[domain.ChannelSMS].SentAt)
	assert.Equal(t, domain.StatusFailed, byChannel[domain.ChannelEmail].Status)
	assert.NotEmpty(t, byChannel[domain.ChannelEmail].Error)
}

func TestBroadcastFailureDoesNotRaise(t *testing.T) {
	contact := familyContact()
	contact.Email = ""
	contact.Channels.Email = false

	records := &fakeRecordRepo{}
	sms := &fakeSMSSender{err: errors.New("carrier rejected")}
	uc := newTestEngine(&fakeContactRepo{contacts: []*contactdomain.Contact{contact}}, records, sms, &fakeEmailSender{})

	result, err := uc.Broadcast(context.Background(), "patient-1", "doctor_flag", "Flag", "Asymmetry detected")
	require.NoError(t, err, "individual send failures are data, not call failures")

	require.Len(t, result, 1)
	assert.Equal(t, domain.StatusFailed, result[0].Status)
	assert.Equal(t, "carrier rejected", result[0].Error)
}

func TestBroadcastSkipsContactWithNoUsableChannel(t *testing.T) {
	// Flag on but field missing, and field present but flag off: neither
	// channel qualifies, so the contact is skipped without a ledger entry.
	contact := familyContact()
	contact.Phone = ""
	contact.Channels.Email = false

	records := &fakeRecordRepo{}
	uc := newTestEngine(&fakeContactRepo{contacts: []*contactdomain.Contact{contact}}, records, &fakeSMSSender{}, &fakeEmailSender{})

	result, err := uc.Broadcast(context.Background(), "patient-1", "analysis_update", "Update", "Gait improved")
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Empty(t, records.records)
}

func TestBroadcastSnapshotsContactFields(t *testing.T) {
	records := &fakeRecordRepo{}
	uc := newTestEngine(&fakeContactRepo{contacts: []*contactdomain.Contact{familyContact()}}, records, &fakeSMSSender{}, &fakeEmailSender{})

	result, err := uc.Broadcast(context.Background(), "patient-1", "weekly_summary", "Weekly summary", "Steady progress this week")
	require.NoError(t, err)
	require.Len(t, result, 2)

	for _, record := range result {
		assert.Equal(t, "contact-1", record.ContactID)
		assert.Equal(t, "Dana Rivera", record.ContactName)
		assert.Equal(t, "family", record.ContactRole)
		assert.Equal(t, "weekly_summary", record.Type)
		assert.NotEmpty(t, record.MessagePreview)
	}
}

func TestBroadcastFansOutToMultipleContacts(t *testing.T) {
	doctor := familyContact()
	doctor.ID = "contact-2"
	doctor.Name = "Dr. Okafor"
	doctor.Role = contactdomain.RoleDoctor
	doctor.Email = "okafor@clinic.example"
	doctor.Phone = ""
	doctor.Channels = contactdomain.ChannelFlags{SMS: true, Email: true}

	records := &fakeRecordRepo{}
	sms := &fakeSMSSender{}
	email := &fakeEmailSender{}
	uc := newTestEngine(&fakeContactRepo{contacts: []*contactdomain.Contact{familyContact(), doctor}}, records, sms, email)

	result, err := uc.Broadcast(context.Background(), "patient-1", "analysis_update", "Update", "Gait improved")
	require.NoError(t, err)

	// family: sms + email, doctor: email only (flag on, no phone).
	assert.Len(t, result, 3)
	assert.Len(t, sms.calls, 1)
	assert.Len(t, email.calls, 2)
}

func TestTruncatePreservesRuneBoundaries(t *testing.T) {
	// A message of multi-byte characters must truncate between runes, never
	// through one; a byte-index cut would leave invalid UTF-8.
	long := strings.Repeat("步行改善了", 50)

	cut := truncate(long, previewLength)
	assert.True(t, utf8.ValidString(cut))
	assert.Equal(t, previewLength, utf8.RuneCountInString(cut))
	assert.True(t, strings.HasSuffix(cut, "..."))

	short := "走路更稳了"
	assert.Equal(t, short, truncate(short, previewLength))
}

func TestBroadcastNonASCIIMessagePreviewIsValidUTF8(t *testing.T) {
	records := &fakeRecordRepo{}
	uc := newTestEngine(&fakeContactRepo{contacts: []*contactdomain.Contact{familyContact()}}, records, &fakeSMSSender{}, &fakeEmailSender{})

	message := strings.Repeat("患者的步态对称性提高了", 40)
	result, err := uc.Broadcast(context.Background(), "patient-1", "analysis_update", "进展更新", message)
	require.NoError(t, err)
	require.Len(t, result, 2)

	for _, record := range result {
		assert.True(t, utf8.ValidString(record.MessagePreview), record.Channel)
		assert.LessOrEqual(t, utf8.RuneCountInString(record.MessagePreview), previewLength)
	}
}

func TestBroadcastRejectsUnknownType(t *testing.T) {
	uc := newTestEngine(&fakeContactRepo{}, &fakeRecordRepo{}, &fakeSMSSender{}, &fakeEmailSender{})

	_, err := uc.Broadcast(context.Background(), "patient-1", "carrier_pigeon", "Hi", "Hello")

	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBroadcastFailsWhenRegistryReadFails(t *testing.T) {
	uc := newTestEngine(&fakeContactRepo{findErr: errors.New("store down")}, &fakeRecordRepo{}, &fakeSMSSender{}, &fakeEmailSender{})

	_, err := uc.Broadcast(context.Background(), "patient-1", "analysis_update", "Update", "Gait improved")
	require.Error(t, err)
}

func TestHistoryReturnsEmptySliceNotNil(t *testing.T) {
	uc := newTestEngine(&fakeContactRepo{}, &fakeRecordRepo{}, &fakeSMSSender{}, &fakeEmailSender{})

	records, err := uc.History("patient-1", 50)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
