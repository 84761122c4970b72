package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"recoverylink-backend/internal/notification/dispatcher"
)

// DomainEvent is the payload the analysis pipeline publishes when something
// noteworthy happens (analysis completed, exercise completed, weekly summary
// ready). The subscriber turns each into a care-team broadcast.
type DomainEvent struct {
	PatientID string `json:"patient_id"`
	EventID   uint64 `json:"event_id"`
	Type      string `json:"type"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Enqueuer hands broadcast jobs to the background dispatcher.
type Enqueuer interface {
	Enqueue(job dispatcher.Job) bool
}

// Service subscribes to the domain-event topic and fans events out through
// the notification dispatcher.
type Service struct {
	pubsubClient *pubsub.Client
	enqueuer     Enqueuer
	topicName    string
	subName      string
	// Deduplication: track last event id per patient to avoid double
	// broadcasts. Receive invokes the handler from multiple goroutines, so
	// the map is guarded by the mutex.
	mu          sync.Mutex
	lastEventID map[string]uint64
}

// NewService creates the subscriber. credentialsFile may be empty when
// ambient credentials are available.
func NewService(projectID, topicName, credentialsFile string, enqueuer Enqueuer) (*Service, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	return &Service{
		pubsubClient: client,
		enqueuer:     enqueuer,
		topicName:    topicName,
		subName:      topicName + "-sub", // Convention: topic-sub
		lastEventID:  make(map[string]uint64),
	}, nil
}

// Start ensures the subscription exists and blocks receiving messages until
// the context is cancelled.
func (s *Service) Start(ctx context.Context) {
	log.Printf("[Events] Starting subscriber on topic %s, subscription %s", s.topicName, s.subName)

	sub := s.pubsubClient.Subscription(s.subName)
	exists, err := sub.Exists(ctx)
	if err != nil {
		log.Printf("[Events] Error checking subscription existence: %v", err)
		return
	}

	if !exists {
		topic := s.pubsubClient.Topic(s.topicName)
		topicExists, err := topic.Exists(ctx)
		if err != nil {
			log.Printf("[Events] Error checking topic existence: %v", err)
			return
		}
		if !topicExists {
			log.Printf("[Events] Topic %s does not exist, cannot create subscription", s.topicName)
			return
		}

		sub, err = s.pubsubClient.CreateSubscription(ctx, s.subName, pubsub.SubscriptionConfig{
			Topic:       topic,
			AckDeadline: 10 * time.Second,
		})
		if err != nil {
			log.Printf("[Events] Failed to create subscription: %v", err)
			return
		}
		log.Printf("[Events] Created subscription: %s", s.subName)
	}

	err = sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		s.handleMessage(msg.Data)
		msg.Ack()
	})
	if err != nil {
		log.Printf("[Events] Error receiving messages: %v", err)
	}
}

// handleMessage decodes, dedups and enqueues one event. Malformed payloads
// are logged and dropped so the subscription keeps flowing.
func (s *Service) handleMessage(data []byte) {
	var event DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		log.Printf("[Events] Failed to unmarshal event: %v", err)
		return
	}
	if event.PatientID == "" || event.Type == "" {
		log.Printf("[Events] Dropping event with missing patient_id or type")
		return
	}

	s.mu.Lock()
	lastID, seen := s.lastEventID[event.PatientID]
	if seen && event.EventID <= lastID {
		s.mu.Unlock()
		log.Printf("[Events] Skipping duplicate event %d for patient %s", event.EventID, event.PatientID)
		return
	}
	s.lastEventID[event.PatientID] = event.EventID
	s.mu.Unlock()

	if !s.enqueuer.Enqueue(dispatcher.Job{
		PatientID: event.PatientID,
		Type:      event.Type,
		Subject:   event.Subject,
		Message:   event.Message,
	}) {
		log.Printf("[Events] Dispatcher queue full, dropped event %d for patient %s", event.EventID, event.PatientID)
	}
}
