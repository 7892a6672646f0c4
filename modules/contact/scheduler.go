package contact

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler runs callbacks on their own goroutine via time.AfterFunc.
// Timers are never stopped.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type deferred struct {
	due time.Time
	seq int
	f   func()
}

// QueueScheduler records callbacks and runs them on the goroutine that calls
// Drain. Callbacks never run concurrently with each other or with the caller.
type QueueScheduler struct {
	mu      sync.Mutex
	pending []deferred
	seq     int
	now     func() time.Time
	after   func(time.Duration) <-chan time.Time
}

// QueueOption configures a QueueScheduler.
type QueueOption func(*QueueScheduler)

// WithQueueClock replaces the time source and the wait function.
func WithQueueClock(now func() time.Time, after func(time.Duration) <-chan time.Time) QueueOption {
	return func(q *QueueScheduler) {
		if now != nil {
			q.now = now
		}
		if after != nil {
			q.after = after
		}
	}
}

// NewQueueScheduler creates an empty queue.
func NewQueueScheduler(opts ...QueueOption) *QueueScheduler {
	q := &QueueScheduler{now: time.Now, after: time.After}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *QueueScheduler) AfterFunc(d time.Duration, f func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	q.pending = append(q.pending, deferred{due: q.now().Add(d), seq: q.seq, f: f})
}

// Pending returns the number of callbacks not yet run.
func (q *QueueScheduler) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain waits for each callback's due time and runs it, earliest first,
// until the queue is empty. Callbacks may schedule more work.
// It returns ctx.Err() if ctx ends first; unrun callbacks stay queued.
func (q *QueueScheduler) Drain(ctx context.Context) error {
	for {
		next, ok := q.peek()
		if !ok {
			return nil
		}

		if wait := next.due.Sub(q.now()); wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-q.after(wait):
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		q.remove(next.seq)
		next.f()
	}
}

func (q *QueueScheduler) peek() (deferred, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return deferred{}, false
	}
	return slices.MinFunc(q.pending, func(a, b deferred) int {
		if c := a.due.Compare(b.due); c != 0 {
			return c
		}
		return a.seq - b.seq
	}), true
}

func (q *QueueScheduler) remove(seq int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = slices.DeleteFunc(q.pending, func(d deferred) bool { return d.seq == seq })
}
