// Package debounce coalesces bursts of calls into a single trailing
// invocation and guards against out-of-order results from concurrent
// lookups.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recent function passed to Trigger once the
// configured interval elapses without another call. Earlier pending
// invocations are dropped. A zero interval runs synchronously.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn, replacing any invocation still pending.
func (d *Debouncer) Trigger(fn func()) {
	if d.interval <= 0 {
		fn()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Sequencer hands out monotonically increasing tickets so that callers
// running lookups concurrently can discard results that were overtaken
// by a newer request.
type Sequencer struct {
	mu     sync.Mutex
	latest uint64
}

// Next issues a new ticket, invalidating all earlier ones.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Stale reports whether ticket has been superseded by a newer one.
func (s *Sequencer) Stale(ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ticket != s.latest
}
