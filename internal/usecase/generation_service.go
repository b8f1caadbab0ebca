package usecase

import (
	"context"
	"errors"
	"log/slog"

	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/queue"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

// JobQueue is the part of the dispatch queue the front ends use.
type JobQueue interface {
	Enqueue(req domain.GenerateRequest) (string, *queue.GenerationReceiver, error)
	Status(jobID string) (domain.JobStatus, error)
	Len() int
	Capacity() int
}

// Submission is the outcome of a synchronous generate call. JobID is set
// whenever the request was admitted, even if generation then failed.
type Submission struct {
	JobID  string
	Result *domain.GenerationResult
}

// Health is a snapshot for health endpoints. It does not probe workers.
type Health struct {
	Status        string
	QueueLength   int
	QueueCapacity int
	WorkerCount   int
	ModelName     string
	ModelLoaded   bool
}

// GenerationService is the front-end facade shared by the gRPC and REST
// servers. It holds no state besides the queue handle.
type GenerationService struct {
	queue     JobQueue
	policy    *domain.ParamPolicy
	workers   int
	modelName string
	inflight  *semaphore.Weighted
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewGenerationService creates the facade. maxConcurrent caps the number of
// callers waiting on a result at once; zero means no cap.
func NewGenerationService(q JobQueue, policy *domain.ParamPolicy, workers int, modelName string, maxConcurrent int, logger *slog.Logger) *GenerationService {
	s := &GenerationService{
		queue:     q,
		policy:    policy,
		workers:   workers,
		modelName: modelName,
		logger:    logger.With("component", "generation-service"),
		tracer:    otel.Tracer("imagegen-usecase"),
	}
	if maxConcurrent > 0 {
		s.inflight = semaphore.NewWeighted(int64(maxConcurrent))
	}
	return s
}

// Submit validates req, admits it into the queue and blocks until a worker
// delivers the result or ctx is done. No timeout is applied here; callers
// bound the wait through ctx.
func (s *GenerationService) Submit(ctx context.Context, req domain.GenerateRequest) (*Submission, error) {
	ctx, span := s.tracer.Start(ctx, "service.Submit")
	defer span.End()

	if s.inflight != nil {
		if !s.inflight.TryAcquire(1) {
			span.SetStatus(codes.Error, "too many concurrent requests")
			s.logger.Warn("rejecting request, concurrency limit reached")
			return nil, domain.ErrThrottled
		}
		defer s.inflight.Release(1)
	}

	if err := s.policy.Validate(s.policy.Normalize(req)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid parameters")
		return nil, err
	}

	jobID, rx, err := s.queue.Enqueue(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "admission rejected")
		return nil, err
	}
	span.SetAttributes(attribute.String("job.id", jobID))
	s.logger.Info("job admitted", "job_id", jobID)

	result, err := rx.Wait(ctx)
	sub := &Submission{JobID: jobID, Result: result}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "job did not complete")
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			s.logger.Info("caller went away before the job finished", "job_id", jobID)
		} else {
			s.logger.Warn("job finished with error", "job_id", jobID, "error", err)
		}
		return sub, err
	}
	return sub, nil
}

// Status reports the status of a job, or domain.ErrJobNotFound.
func (s *GenerationService) Status(ctx context.Context, jobID string) (domain.JobStatus, error) {
	_, span := s.tracer.Start(ctx, "service.Status")
	defer span.End()
	span.SetAttributes(attribute.String("job.id", jobID))

	status, err := s.queue.Status(jobID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "status lookup failed")
	}
	return status, err
}

// Health reports queue length and the configured worker count.
func (s *GenerationService) Health(ctx context.Context) Health {
	_, span := s.tracer.Start(ctx, "service.Health")
	defer span.End()

	return Health{
		Status:        "healthy",
		QueueLength:   s.queue.Len(),
		QueueCapacity: s.queue.Capacity(),
		WorkerCount:   s.workers,
		ModelName:     s.modelName,
		ModelLoaded:   true,
	}
}
