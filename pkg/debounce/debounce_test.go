package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/majidkambarath/restaurant-pos/pkg/debounce"
)

func TestDebouncerRunsOnlyLastCall(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)
	var got atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() { got.Store(n) })
	}

	time.Sleep(100 * time.Millisecond)
	if v := got.Load(); v != 5 {
		t.Errorf("ran call %d, want only the last (5)", v)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)
	var fired atomic.Bool

	d.Trigger(func() { fired.Store(true) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if fired.Load() {
		t.Error("stopped invocation still fired")
	}
}

func TestDebouncerZeroIntervalRunsInline(t *testing.T) {
	d := debounce.New(0)
	ran := false
	d.Trigger(func() { ran = true })
	if !ran {
		t.Error("zero-interval trigger did not run synchronously")
	}
}

func TestSequencerLatestWins(t *testing.T) {
	var s debounce.Sequencer

	first := s.Next()
	second := s.Next()

	if s.Stale(second) {
		t.Error("latest ticket reported stale")
	}
	if !s.Stale(first) {
		t.Error("superseded ticket not reported stale")
	}

	third := s.Next()
	if !s.Stale(second) || s.Stale(third) {
		t.Error("staleness did not advance with new tickets")
	}
}
