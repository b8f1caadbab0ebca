package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/domain/mocks"
	"imagegen-dispatch/internal/queue"
	"imagegen-dispatch/internal/worker"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPolicy() *domain.ParamPolicy {
	return domain.NewParamPolicy(domain.DefaultParamDefaults, domain.ParamLimits{MaxWidth: 1024, MaxHeight: 1024, MaxSteps: 150})
}

func intPtr(v int) *int { return &v }

func TestGenerationService_SubmitReturnsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(&domain.GenerationResult{Images: [][]byte{[]byte("img")}, StepsUsed: 50}, nil)

	q := queue.NewGenerationQueue(4, testLogger())
	pool := worker.NewPool(q, gen, testPolicy(), testLogger(), worker.WithWorkers(1), worker.WithPollInterval(10*time.Millisecond))
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(func() { _ = pool.Stop(context.Background()) })

	svc := NewGenerationService(q, testPolicy(), pool.Workers(), "test-model", 0, testLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub, err := svc.Submit(ctx, domain.GenerateRequest{Prompt: "a boat"})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.JobID)
	assert.Equal(t, 50, sub.Result.StepsUsed)

	status, err := svc.Status(ctx, sub.JobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, status)
}

func TestGenerationService_RejectsInvalidBeforeEnqueue(t *testing.T) {
	q := queue.NewGenerationQueue(4, testLogger())
	svc := NewGenerationService(q, testPolicy(), 1, "test-model", 0, testLogger())

	cases := []struct {
		name string
		req  domain.GenerateRequest
	}{
		{"empty prompt", domain.GenerateRequest{}},
		{"width below minimum", domain.GenerateRequest{Prompt: "p", Width: intPtr(32)}},
		{"explicit zero steps", domain.GenerateRequest{Prompt: "p", Steps: intPtr(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := svc.Submit(context.Background(), tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidParameters)
			assert.Nil(t, sub)
		})
	}
	assert.Equal(t, 0, q.Len())
}

func TestGenerationService_QueueFull(t *testing.T) {
	q := queue.NewGenerationQueue(1, testLogger())
	_, _, err := q.Enqueue(domain.GenerateRequest{Prompt: "occupying"})
	require.NoError(t, err)

	svc := NewGenerationService(q, testPolicy(), 1, "test-model", 0, testLogger())
	_, err = svc.Submit(context.Background(), domain.GenerateRequest{Prompt: "late"})

	assert.ErrorIs(t, err, domain.ErrQueueFull)
	assert.Equal(t, 1, q.Len())
}

func TestGenerationService_CallerCancellationKeepsJob(t *testing.T) {
	q := queue.NewGenerationQueue(4, testLogger())
	svc := NewGenerationService(q, testPolicy(), 1, "test-model", 0, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	sub, err := svc.Submit(ctx, domain.GenerateRequest{Prompt: "slow"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, sub)

	status, err := svc.Status(context.Background(), sub.JobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusQueued, status)
	assert.Equal(t, 1, q.Len())
}

func TestGenerationService_ConcurrencyCap(t *testing.T) {
	q := queue.NewGenerationQueue(4, testLogger())
	svc := NewGenerationService(q, testPolicy(), 1, "test-model", 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, domain.GenerateRequest{Prompt: "holds the slot"})
		firstDone <- err
	}()
	require.Eventually(t, func() bool { return q.Len() == 1 }, time.Second, 5*time.Millisecond)

	_, err := svc.Submit(context.Background(), domain.GenerateRequest{Prompt: "second"})
	assert.ErrorIs(t, err, domain.ErrThrottled)

	cancel()
	assert.True(t, errors.Is(<-firstDone, context.Canceled))
}

func TestGenerationService_UncappedWaitersFillQueue(t *testing.T) {
	const capacity = 12
	q := queue.NewGenerationQueue(capacity, testLogger())
	svc := NewGenerationService(q, testPolicy(), 1, "test-model", 0, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for i := 0; i < capacity; i++ {
		go func() { _, _ = svc.Submit(ctx, domain.GenerateRequest{Prompt: "waiting"}) }()
	}
	require.Eventually(t, func() bool { return q.Len() == capacity }, time.Second, 5*time.Millisecond)

	_, err := svc.Submit(context.Background(), domain.GenerateRequest{Prompt: "one too many"})
	assert.ErrorIs(t, err, domain.ErrQueueFull)
	assert.NotErrorIs(t, err, domain.ErrThrottled)
}

func TestGenerationService_StatusUnknownJob(t *testing.T) {
	svc := NewGenerationService(queue.NewGenerationQueue(1, testLogger()), testPolicy(), 1, "m", 0, testLogger())

	_, err := svc.Status(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestGenerationService_Health(t *testing.T) {
	q := queue.NewGenerationQueue(10, testLogger())
	_, _, err := q.Enqueue(domain.GenerateRequest{Prompt: "p"})
	require.NoError(t, err)
	svc := NewGenerationService(q, testPolicy(), 3, "sd-1.5", 0, testLogger())

	h := svc.Health(context.Background())

	assert.Equal(t, Health{
		Status:        "healthy",
		QueueLength:   1,
		QueueCapacity: 10,
		WorkerCount:   3,
		ModelName:     "sd-1.5",
		ModelLoaded:   true,
	}, h)
}
