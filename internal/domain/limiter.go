package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// DefaultParallel is the number of conversions allowed in flight by default.
const DefaultParallel = 5

// ErrInvalidParallel is returned for a concurrency limit that is not a
// positive integer.
var ErrInvalidParallel = errors.New("parallel must be a positive integer")

// Task is a unit of work admitted by a Limiter.
type Task func(ctx context.Context)

// Limiter is a counting admission gate bounding how many tasks run at once.
// Submission never blocks the caller; admission order is not guaranteed.
type Limiter struct {
	sem      *semaphore.Weighted
	limit    int
	inFlight atomic.Int64
}

// NewLimiter creates a Limiter admitting at most n tasks at a time.
func NewLimiter(n int) (*Limiter, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParallel, n)
	}

	return &Limiter{sem: semaphore.NewWeighted(int64(n)), limit: n}, nil
}

// ParseParallel validates a raw concurrency setting.
func ParseParallel(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidParallel, raw)
	}

	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidParallel, n)
	}

	return n, nil
}

// Limit returns the admission bound.
func (l *Limiter) Limit() int { return l.limit }

// InFlight returns the number of tasks currently running.
func (l *Limiter) InFlight() int { return int(l.inFlight.Load()) }

// Submit schedules task and returns immediately. The task runs once a slot is
// free; if ctx ends first the task is dropped and the ticket carries ctx's
// error.
func (l *Limiter) Submit(ctx context.Context, task Task) *Ticket {
	ticket := &Ticket{done: make(chan struct{})}

	go func() {
		defer close(ticket.done)

		if err := l.sem.Acquire(ctx, 1); err != nil {
			ticket.err = err
			return
		}
		defer l.sem.Release(1)

		l.inFlight.Add(1)
		defer l.inFlight.Add(-1)

		task(ctx)
	}()

	return ticket
}

// Ticket tracks one submitted task.
type Ticket struct {
	done chan struct{}
	err  error
}

// Done is closed when the task has finished or was dropped.
func (t *Ticket) Done() <-chan struct{} { return t.done }

// Wait blocks until the task has finished and returns the admission error,
// if any.
func (t *Ticket) Wait() error {
	<-t.done

	return t.err
}
