package domain

import "errors"

var (
	// ErrQueueFull is returned when admission is rejected because the
	// dispatch queue is at capacity.
	ErrQueueFull = errors.New("queue full")

	// ErrInvalidParameters is returned when generation parameters fail
	// validation. Such requests never reach the generator.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrGenerationFailed wraps any error returned by the generator.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrJobNotFound is a sentinel error returned when a job id is unknown.
	ErrJobNotFound = errors.New("job not found")

	// ErrSenderAbandoned is observed by a waiting caller when the worker that
	// owned its job went away without delivering a result.
	ErrSenderAbandoned = errors.New("worker dropped response")
)

// ErrThrottled is returned when a request is turned away by an ingress
// limit before it reaches the queue.
var ErrThrottled = errors.New("too many requests")
