package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopStopIsIdempotent(t *testing.T) {
	var never *Loop
	never.Stop()
	never.Stop()

	zero := &Loop{}
	zero.Stop()
	zero.Stop()

	Stop(nil)

	var c atomic.Int64
	l := Real{}.Every(time.Millisecond, func() bool { c.Add(1); return true })
	l.Stop()
	l.Stop()
}

func TestLoopStopsTicking(t *testing.T) {
	var c atomic.Int64
	l := Real{}.Every(time.Millisecond, func() bool { c.Add(1); return true })
	time.Sleep(20 * time.Millisecond)
	l.Stop()
	time.Sleep(10 * time.Millisecond)
	before := c.Load()
	time.Sleep(20 * time.Millisecond)
	if after := c.Load(); after != before {
		t.Fatalf("loop kept running after stop: %v -> %v", before, after)
	}
	if before == 0 {
		t.Fatal("loop never ticked")
	}
}

func TestLoopStopsWhenCallbackDeclines(t *testing.T) {
	var c atomic.Int64
	Real{}.Every(time.Millisecond, func() bool { return c.Add(1) < 3 })
	time.Sleep(50 * time.Millisecond)
	if got := c.Load(); got != 3 {
		t.Fatalf("expected 3 ticks, got %v", got)
	}
}

func TestLoopStopFromInsideTick(t *testing.T) {
	var c atomic.Int64
	self := make(chan Timer, 1)
	done := make(chan struct{})
	l := Real{}.Every(time.Millisecond, func() bool {
		c.Add(1)
		(<-self).Stop()
		close(done)
		return true
	})
	self <- l
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tick never ran")
	}
	time.Sleep(10 * time.Millisecond)
	if c.Load() != 1 {
		t.Fatalf("expected a single tick, got %v", c.Load())
	}
}

func TestRealAfterFunc(t *testing.T) {
	fired := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	var c atomic.Int64
	timer := Real{}.AfterFunc(20*time.Millisecond, func() { c.Add(1) })
	timer.Stop()
	timer.Stop()
	time.Sleep(40 * time.Millisecond)
	if c.Load() != 0 {
		t.Fatal("stopped timer fired")
	}
}
