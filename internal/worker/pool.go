package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/metrics"
	"imagegen-dispatch/internal/queue"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// JobSource is the part of the dispatch queue the workers use.
type JobSource interface {
	Dequeue() *queue.GenerationJob
	UpdateStatus(jobID string, status domain.JobStatus)
	Ready() <-chan struct{}
}

// Pool runs a fixed number of workers that pull jobs from a JobSource and
// hand them to a Generator.
type Pool struct {
	source       JobSource
	generator    domain.Generator
	policy       *domain.ParamPolicy
	workers      int
	pollInterval time.Duration
	logger       *slog.Logger
	tracer       trace.Tracer

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) { p.workers = n }
}

// WithPollInterval sets how long an idle worker waits before re-checking the
// queue when no wakeup arrives.
func WithPollInterval(d time.Duration) PoolOption {
	return func(p *Pool) { p.pollInterval = d }
}

// NewPool creates a worker pool. Workers do not run until Start is called.
func NewPool(source JobSource, generator domain.Generator, policy *domain.ParamPolicy, logger *slog.Logger, opts ...PoolOption) *Pool {
	p := &Pool{
		source:       source,
		generator:    generator,
		policy:       policy,
		workers:      2,
		pollInterval: 100 * time.Millisecond,
		logger:       logger.With("component", "worker-pool"),
		tracer:       otel.Tracer("imagegen-worker"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers <= 0 {
		p.workers = 1
	}
	if p.pollInterval <= 0 {
		p.pollInterval = 100 * time.Millisecond
	}
	return p
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Start launches the workers. They run until ctx is cancelled or Stop is
// called. Calling Start on a running pool is a no-op.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}
	p.running = true

	ctx, p.cancel = context.WithCancel(ctx)
	p.logger.Info("worker pool starting", "workers", p.workers, "poll_interval", p.pollInterval)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.workerLoop(ctx, i)
	}
	return nil
}

// Stop signals all workers and waits for them to return, or for ctx to end.
// A job in flight sees its context cancelled.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.cancel()
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("worker pool stopped")
		return nil
	case <-ctx.Done():
		p.logger.Warn("worker pool shutdown timed out")
		return ctx.Err()
	}
}

// workerLoop is run by each worker goroutine.
func (p *Pool) workerLoop(ctx context.Context, workerID int) {
	defer p.wg.Done()

	logger := p.logger.With("worker_id", workerID)
	logger.Info("worker started")

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			logger.Info("worker stopped")
			return
		}

		job := p.source.Dequeue()
		if job == nil {
			select {
			case <-ctx.Done():
			case <-p.source.Ready():
			case <-ticker.C:
			}
			continue
		}

		p.runJob(ctx, workerID, job)
	}
}

// runJob processes one job and always releases its completion channel.
func (p *Pool) runJob(ctx context.Context, workerID int, job *queue.GenerationJob) {
	ctx, span := p.tracer.Start(ctx, "worker.runJob",
		trace.WithAttributes(
			attribute.String("job.id", job.ID),
			attribute.Int("worker.id", workerID),
		))
	defer span.End()

	logger := p.logger.With("job_id", job.ID, "worker_id", workerID)

	// Runs after the recover below; a panicking job leaves the caller with
	// ErrSenderAbandoned instead of a hang.
	defer job.Completion.Close()
	defer func() {
		if r := recover(); r != nil {
			p.source.UpdateStatus(job.ID, domain.JobStatusFailed)
			metrics.JobsProcessedTotal.WithLabelValues("panicked").Inc()
			span.RecordError(fmt.Errorf("panic: %v", r))
			span.SetStatus(codes.Error, "job execution panicked")
			logger.Error("job execution panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	params := p.policy.Normalize(job.Request)
	if err := p.policy.Validate(params); err != nil {
		p.source.UpdateStatus(job.ID, domain.JobStatusFailed)
		metrics.JobsProcessedTotal.WithLabelValues("invalid").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid parameters")
		logger.Warn("rejecting job with invalid parameters", "error", err)
		job.Completion.Send(nil, err)
		return
	}

	logger.Info("processing job",
		"steps", params.Steps,
		"guidance_scale", params.GuidanceScale,
		"width", params.Width,
		"height", params.Height,
		"queued_for", time.Since(job.EnqueuedAt),
	)

	start := time.Now()
	result, err := p.generator.Generate(ctx, params)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err == nil && result == nil {
		err = errors.New("generator returned no result")
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		p.source.UpdateStatus(job.ID, domain.JobStatusFailed)
		metrics.JobsProcessedTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		logger.Error("job failed", "error", err)
		job.Completion.Send(nil, err)
		return
	}

	p.source.UpdateStatus(job.ID, domain.JobStatusCompleted)
	metrics.JobsProcessedTotal.WithLabelValues("completed").Inc()
	span.SetStatus(codes.Ok, "job completed")
	logger.Info("job completed", "elapsed_seconds", result.ElapsedSeconds, "seed", result.SeedUsed)
	job.Completion.Send(result, nil)
}
