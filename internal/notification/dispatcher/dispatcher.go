package dispatcher

import (
	"context"
	"log"
	"sync"
	"time"

	"recoverylink-backend/internal/notification/domain"
)

// Job is one broadcast request queued for background delivery.
type Job struct {
	PatientID string
	Type      string
	Subject   string
	Message   string
}

// Broadcaster is the engine jobs are executed against.
type Broadcaster interface {
	Broadcast(ctx context.Context, patientID, notifType, subject, message string) ([]*domain.Record, error)
}

// Dispatcher runs fire-and-forget broadcasts on a bounded worker pool so a
// triggering request (e.g. schedule creation) never blocks on or fails from
// a secondary notification. Job errors land in the log, nowhere else.
type Dispatcher struct {
	broadcaster Broadcaster
	jobQueue    chan Job
	workerWg    sync.WaitGroup
	workerCount int
	jobTimeout  time.Duration
	started     bool
	mu          sync.Mutex
}

// NewDispatcher creates a dispatcher with the given worker count.
func NewDispatcher(broadcaster Broadcaster, workerCount int) *Dispatcher {
	if workerCount <= 0 {
		workerCount = 2
	}
	return &Dispatcher{
		broadcaster: broadcaster,
		jobQueue:    make(chan Job, 100),
		workerCount: workerCount,
		jobTimeout:  30 * time.Second,
	}
}

// Start launches the workers.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return
	}

	for i := 0; i < d.workerCount; i++ {
		d.workerWg.Add(1)
		go d.worker(i)
	}
	d.started = true
	log.Printf("[Dispatcher] Started %d workers", d.workerCount)
}

// Stop drains the queue and stops all workers.
func (d *Dispatcher) Stop() {
	close(d.jobQueue)
	d.workerWg.Wait()
	log.Println("[Dispatcher] All workers stopped")
}

// Enqueue adds a job without blocking; false means the queue is full and the
// job was dropped.
func (d *Dispatcher) Enqueue(job Job) bool {
	select {
	case d.jobQueue <- job:
		return true
	default:
		log.Printf("[Dispatcher] Queue full, dropping %s broadcast for patient %s", job.Type, job.PatientID)
		return false
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.workerWg.Done()

	for job := range d.jobQueue {
		d.processJob(job)
	}

	log.Printf("[Dispatcher] Worker %d stopped", id)
}

func (d *Dispatcher) processJob(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.jobTimeout)
	defer cancel()

	records, err := d.broadcaster.Broadcast(ctx, job.PatientID, job.Type, job.Subject, job.Message)
	if err != nil {
		log.Printf("[Dispatcher] Broadcast %s for patient %s failed: %v", job.Type, job.PatientID, err)
		return
	}
	log.Printf("[Dispatcher] Broadcast %s for patient %s: %d attempts", job.Type, job.PatientID, len(records))
}
