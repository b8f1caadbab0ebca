package queue

import (
	"context"
	"sync"

	"imagegen-dispatch/internal/domain"
)

type outcome[T any] struct {
	value T
	err   error
}

// Sender is the producer half of a job's completion channel. It is owned by
// the job until dequeued and then by the worker processing it.
type Sender[T any] struct {
	ch   chan outcome[T]
	once sync.Once
}

// Receiver is the consumer half of a job's completion channel, owned by the
// caller that submitted the job.
type Receiver[T any] struct {
	ch chan outcome[T]
}

// NewCompletion creates a one-shot completion channel.
func NewCompletion[T any]() (*Sender[T], *Receiver[T]) {
	ch := make(chan outcome[T], 1)
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

// Send delivers the job outcome. Only the first Send or Close has any effect.
// It never blocks, including when the receiver has stopped waiting, and
// reports whether this call delivered the outcome.
func (s *Sender[T]) Send(value T, err error) bool {
	sent := false
	s.once.Do(func() {
		s.ch <- outcome[T]{value: value, err: err}
		close(s.ch)
		sent = true
	})
	return sent
}

// Close drops the sender. If nothing was sent the receiver observes
// domain.ErrSenderAbandoned.
func (s *Sender[T]) Close() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// Wait blocks until the outcome is delivered, the sender is dropped, or ctx
// is done. Returning on ctx abandons the receiver; the job itself keeps
// running and its result is discarded.
func (r *Receiver[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	select {
	case o, ok := <-r.ch:
		if !ok {
			return zero, domain.ErrSenderAbandoned
		}
		return o.value, o.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
