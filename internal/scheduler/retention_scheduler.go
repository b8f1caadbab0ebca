// internal/scheduler/retention_scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Sweeper evicts expired job status entries.
type Sweeper interface {
	Sweep(now time.Time) int
}

// RetentionScheduler periodically sweeps the job status table so it does not
// grow without bound.
type RetentionScheduler struct {
	cron     *cron.Cron
	sweeper  Sweeper
	interval time.Duration
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewRetentionScheduler creates a scheduler that sweeps every interval.
// A non-positive interval disables sweeping.
func NewRetentionScheduler(sweeper Sweeper, interval time.Duration, logger *slog.Logger) *RetentionScheduler {
	return &RetentionScheduler{
		cron:     cron.New(),
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With("component", "retention-scheduler"),
		tracer:   otel.Tracer("imagegen-scheduler"),
	}
}

// Start runs the scheduler until ctx is cancelled.
func (s *RetentionScheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("status retention disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddJob(spec, s); err != nil {
		return fmt.Errorf("failed to schedule status sweep %q: %w", spec, err)
	}

	s.logger.Info("retention scheduler started", "schedule", spec)
	s.cron.Start()
	<-ctx.Done()
	s.logger.Info("retention scheduler stopping...")
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("retention scheduler stopped")
	return ctx.Err()
}

// Run is called by the cron library on every tick.
func (s *RetentionScheduler) Run() {
	_, span := s.tracer.Start(context.Background(), "scheduler.SweepStatuses")
	defer span.End()

	evicted := s.sweeper.Sweep(time.Now())
	span.SetAttributes(attribute.Int("statuses.evicted", evicted))
	if evicted > 0 {
		s.logger.Info("evicted expired job statuses", "count", evicted)
	}
}
