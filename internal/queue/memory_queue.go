package queue

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/metrics"

	"github.com/google/uuid"
)

// Job is one admitted unit of work.
type Job[Req, Res any] struct {
	ID         string
	Request    Req
	EnqueuedAt time.Time
	// Completion is used exactly once by the worker that dequeued the job.
	Completion *Sender[Res]
}

type statusEntry struct {
	status    domain.JobStatus
	updatedAt time.Time
}

type options struct {
	statusTTL        time.Duration
	maxStatusEntries int
	now              func() time.Time
}

// Option configures a MemoryQueue.
type Option func(*options)

// WithStatusTTL sets how long terminal status entries are retained before
// Sweep evicts them. Zero keeps them forever.
func WithStatusTTL(d time.Duration) Option {
	return func(o *options) { o.statusTTL = d }
}

// WithMaxStatusEntries caps the status table; Sweep evicts the oldest
// terminal entries beyond it. Zero means no cap.
func WithMaxStatusEntries(n int) Option {
	return func(o *options) { o.maxStatusEntries = n }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// MemoryQueue is a bounded in-memory FIFO of pending jobs plus a status table
// keyed by job id. A single mutex guards both, so every operation is atomic
// with respect to the others.
type MemoryQueue[Req, Res any] struct {
	mu       sync.Mutex
	pending  []*Job[Req, Res]
	statuses map[string]statusEntry
	capacity int
	ready    chan struct{}
	opts     options
	logger   *slog.Logger
}

// NewMemoryQueue creates a queue holding at most capacity pending jobs.
func NewMemoryQueue[Req, Res any](capacity int, logger *slog.Logger, opts ...Option) *MemoryQueue[Req, Res] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryQueue[Req, Res]{
		statuses: make(map[string]statusEntry),
		capacity: capacity,
		ready:    make(chan struct{}, 1),
		opts:     o,
		logger:   logger.With("component", "memory-queue"),
	}
}

// Enqueue admits req with a fresh id and completion channel. It returns
// domain.ErrQueueFull without mutating anything when the queue is at capacity.
func (q *MemoryQueue[Req, Res]) Enqueue(req Req) (string, *Receiver[Res], error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) >= q.capacity {
		metrics.QueueRejectionsTotal.Inc()
		q.logger.Warn("rejecting job, queue is full", "capacity", q.capacity)
		return "", nil, domain.ErrQueueFull
	}

	sender, receiver := NewCompletion[Res]()
	job := &Job[Req, Res]{
		ID:         uuid.NewString(),
		Request:    req,
		EnqueuedAt: q.opts.now(),
		Completion: sender,
	}
	q.pending = append(q.pending, job)
	q.statuses[job.ID] = statusEntry{status: domain.JobStatusQueued, updatedAt: job.EnqueuedAt}
	metrics.QueueLength.Set(float64(len(q.pending)))
	q.notify()

	q.logger.Debug("job enqueued", "job_id", job.ID, "queue_length", len(q.pending))
	return job.ID, receiver, nil
}

// Dequeue removes the oldest pending job and marks it processing in the same
// critical section. It returns nil if the queue is empty.
func (q *MemoryQueue[Req, Res]) Dequeue() *Job[Req, Res] {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	job := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	q.statuses[job.ID] = statusEntry{status: domain.JobStatusProcessing, updatedAt: q.opts.now()}
	metrics.QueueLength.Set(float64(len(q.pending)))

	// Pass the wakeup on so another idle worker picks up the rest.
	if len(q.pending) > 0 {
		q.notify()
	}
	return job
}

// Status returns the current status of a job, or domain.ErrJobNotFound.
func (q *MemoryQueue[Req, Res]) Status(jobID string) (domain.JobStatus, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.statuses[jobID]
	if !ok {
		return "", domain.ErrJobNotFound
	}
	return entry.status, nil
}

// UpdateStatus unconditionally overwrites the status of a job.
func (q *MemoryQueue[Req, Res]) UpdateStatus(jobID string, status domain.JobStatus) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.statuses[jobID] = statusEntry{status: status, updatedAt: q.opts.now()}
}

// Len returns the number of pending jobs.
func (q *MemoryQueue[Req, Res]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Capacity returns the configured maximum number of pending jobs.
func (q *MemoryQueue[Req, Res]) Capacity() int {
	return q.capacity
}

// Ready is signalled whenever work may be available. Workers block on it
// instead of spinning; a signal is a hint and Dequeue may still return nil.
func (q *MemoryQueue[Req, Res]) Ready() <-chan struct{} {
	return q.ready
}

// Sweep evicts terminal status entries older than the configured TTL, then
// the oldest terminal entries beyond the configured cap. Queued and
// processing entries are never evicted. It returns the number of evictions.
func (q *MemoryQueue[Req, Res]) Sweep(now time.Time) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	evicted := 0
	if q.opts.statusTTL > 0 {
		for id, entry := range q.statuses {
			if entry.status.IsTerminal() && now.Sub(entry.updatedAt) >= q.opts.statusTTL {
				delete(q.statuses, id)
				evicted++
			}
		}
	}

	if q.opts.maxStatusEntries > 0 && len(q.statuses) > q.opts.maxStatusEntries {
		type aged struct {
			id        string
			updatedAt time.Time
		}
		var terminal []aged
		for id, entry := range q.statuses {
			if entry.status.IsTerminal() {
				terminal = append(terminal, aged{id: id, updatedAt: entry.updatedAt})
			}
		}
		slices.SortFunc(terminal, func(a, b aged) int {
			return a.updatedAt.Compare(b.updatedAt)
		})
		for _, t := range terminal {
			if len(q.statuses) <= q.opts.maxStatusEntries {
				break
			}
			delete(q.statuses, t.id)
			evicted++
		}
	}

	if evicted > 0 {
		metrics.StatusEntriesEvictedTotal.Add(float64(evicted))
		q.logger.Debug("evicted terminal status entries", "count", evicted, "remaining", len(q.statuses))
	}
	return evicted
}

func (q *MemoryQueue[Req, Res]) notify() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
