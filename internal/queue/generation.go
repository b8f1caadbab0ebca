package queue

import (
	"log/slog"

	"imagegen-dispatch/internal/domain"
)

// GenerationQueue is the dispatch queue shared by both front ends and the
// worker pool.
type GenerationQueue = MemoryQueue[domain.GenerateRequest, *domain.GenerationResult]

// GenerationJob is a job admitted into a GenerationQueue.
type GenerationJob = Job[domain.GenerateRequest, *domain.GenerationResult]

// GenerationReceiver is the caller side of a generation job's completion channel.
type GenerationReceiver = Receiver[*domain.GenerationResult]

// NewGenerationQueue creates the dispatch queue for generation jobs.
func NewGenerationQueue(capacity int, logger *slog.Logger, opts ...Option) *GenerationQueue {
	return NewMemoryQueue[domain.GenerateRequest, *domain.GenerationResult](capacity, logger, opts...)
}
