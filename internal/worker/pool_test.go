package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/domain/mocks"
	"imagegen-dispatch/internal/queue"

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

func startPool(t *testing.T, gen domain.Generator, workers int) (*queue.GenerationQueue, *Pool) {
	t.Helper()
	q := queue.NewGenerationQueue(16, testLogger())
	p := NewPool(q, gen, testPolicy(), testLogger(), WithWorkers(workers), WithPollInterval(10*time.Millisecond))
	require.NoError(t, p.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, p.Stop(ctx))
	})
	return q, p
}

func waitResult(t *testing.T, rx *queue.GenerationReceiver) (*domain.GenerationResult, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := rx.Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded, "caller hung waiting for result")
	return res, err
}

func TestPool_CompletesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.GenerationParams) (*domain.GenerationResult, error) {
			assert.Equal(t, "a red fox", p.Prompt)
			assert.Equal(t, 50, p.Steps)
			assert.Equal(t, 512, p.Width)
			return &domain.GenerationResult{Images: [][]byte{[]byte("png")}, SeedUsed: 1, StepsUsed: p.Steps}, nil
		})

	q, _ := startPool(t, gen, 1)
	id, rx, err := q.Enqueue(domain.GenerateRequest{Prompt: "a red fox"})
	require.NoError(t, err)

	res, err := waitResult(t, rx)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("png")}, res.Images)

	status, err := q.Status(id)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, status)
}

func TestPool_GeneratorFailureIsReportedAndWorkerSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	boom := errors.New("out of memory")
	gomock.InOrder(
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, boom),
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&domain.GenerationResult{}, nil),
	)

	q, _ := startPool(t, gen, 1)

	failedID, rx, err := q.Enqueue(domain.GenerateRequest{Prompt: "first"})
	require.NoError(t, err)
	_, err = waitResult(t, rx)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.ErrorIs(t, err, boom)
	status, _ := q.Status(failedID)
	assert.Equal(t, domain.JobStatusFailed, status)

	okID, rx, err := q.Enqueue(domain.GenerateRequest{Prompt: "second"})
	require.NoError(t, err)
	_, err = waitResult(t, rx)
	require.NoError(t, err)
	status, _ = q.Status(okID)
	assert.Equal(t, domain.JobStatusCompleted, status)
}

func TestPool_InvalidParametersNeverReachGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl) // no expectations: any call fails the test

	q, _ := startPool(t, gen, 1)
	width := 32
	id, rx, err := q.Enqueue(domain.GenerateRequest{Prompt: "tiny", Width: &width})
	require.NoError(t, err)

	_, err = waitResult(t, rx)
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)
	status, _ := q.Status(id)
	assert.Equal(t, domain.JobStatusFailed, status)
}

func TestPool_PanicAbandonsSenderAndWorkerSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gomock.InOrder(
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, domain.GenerationParams) (*domain.GenerationResult, error) {
				panic("model exploded")
			}),
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&domain.GenerationResult{}, nil),
	)

	q, _ := startPool(t, gen, 1)

	id, rx, err := q.Enqueue(domain.GenerateRequest{Prompt: "crash"})
	require.NoError(t, err)
	_, err = waitResult(t, rx)
	assert.ErrorIs(t, err, domain.ErrSenderAbandoned)
	assert.NotErrorIs(t, err, domain.ErrGenerationFailed)
	status, _ := q.Status(id)
	assert.Equal(t, domain.JobStatusFailed, status)

	_, rx, err = q.Enqueue(domain.GenerateRequest{Prompt: "after crash"})
	require.NoError(t, err)
	_, err = waitResult(t, rx)
	assert.NoError(t, err)
}

func TestPool_ConcurrentSubmissionsGetTheirOwnResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.GenerationParams) (*domain.GenerationResult, error) {
			time.Sleep(20 * time.Millisecond)
			return &domain.GenerationResult{Images: [][]byte{[]byte(p.Prompt)}}, nil
		}).Times(2)

	q, _ := startPool(t, gen, 2)

	var wg sync.WaitGroup
	for _, prompt := range []string{"castle", "ocean"} {
		wg.Add(1)
		go func(prompt string) {
			defer wg.Done()
			_, rx, err := q.Enqueue(domain.GenerateRequest{Prompt: prompt})
			if !assert.NoError(t, err) {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			res, err := rx.Wait(ctx)
			if assert.NoError(t, err) {
				assert.Equal(t, prompt, string(res.Images[0]))
			}
		}(prompt)
	}
	wg.Wait()
}

func TestPool_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	q := queue.NewGenerationQueue(1, testLogger())
	p := NewPool(q, gen, testPolicy(), testLogger(), WithWorkers(3))

	assert.Equal(t, 3, p.Workers())
	require.NoError(t, p.Start(context.Background()))
	require.NoError(t, p.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, p.Stop(ctx))
	assert.NoError(t, p.Stop(ctx))
}
