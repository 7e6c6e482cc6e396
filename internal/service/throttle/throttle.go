// Package throttle spaces outbound provider calls process-wide.
package throttle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	DefaultInterval = 200 * time.Millisecond
	DefaultTicks    = 2
)

// Throttle admits one caller at a time and keeps consecutive admissions at
// least ticks*interval apart. It also counts attempts and failures.
type Throttle struct {
	mu      sync.Mutex
	spacing time.Duration
	next    time.Time

	attempts atomic.Uint64
	failures atomic.Uint64

	now func() time.Time
}

type Stats struct {
	Attempts uint64
	Failures uint64
}

type Option func(*Throttle)

func WithInterval(interval time.Duration, ticks int) Option {
	return func(t *Throttle) {
		if ticks < 1 {
			ticks = 1
		}
		if interval < 0 {
			interval = 0
		}
		t.spacing = interval * time.Duration(ticks)
	}
}

func WithClock(now func() time.Time) Option {
	return func(t *Throttle) { t.now = now }
}

func New(opts ...Option) *Throttle {
	t := &Throttle{
		spacing: DefaultInterval * DefaultTicks,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Wait blocks until the caller may issue a call and returns its sequence
// number. Waiters are admitted one at a time.
func (t *Throttle) Wait(ctx context.Context) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if wait := t.next.Sub(t.now()); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return 0, ctx.Err()
		case <-timer.C:
		}
	}
	t.next = t.now().Add(t.spacing)
	return t.attempts.Add(1), nil
}

// RecordFailure counts a failed call and returns the running total.
func (t *Throttle) RecordFailure() uint64 {
	return t.failures.Add(1)
}

func (t *Throttle) Stats() Stats {
	return Stats{Attempts: t.attempts.Load(), Failures: t.failures.Load()}
}

func (t *Throttle) Spacing() time.Duration { return t.spacing }
