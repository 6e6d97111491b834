// Package clock schedules the frame loop and session timers.
package clock

import (
	"sync"
	"time"
)

// Timer is a cancellable handle. Stop is idempotent.
type Timer interface {
	Stop()
}

type Clock interface {
	// AfterFunc calls f once after d
	AfterFunc(d time.Duration, f func()) Timer

	// Every calls f each period until f returns false or the timer is stopped
	Every(period time.Duration, f func() bool) Timer
}

type Real struct{}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) Stop() {
	if r != nil && r.t != nil {
		r.t.Stop()
	}
}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return &realTimer{t: time.AfterFunc(d, f)}
}

func (Real) Every(period time.Duration, f func() bool) Timer {
	l := &Loop{stop: make(chan struct{})}
	go l.run(period, f)
	return l
}

// Loop is a self rescheduling task. The zero value and nil are stopped loops.
type Loop struct {
	once sync.Once
	stop chan struct{}
}

// Stop never waits for an in-flight tick, so it may be called from inside one.
func (l *Loop) Stop() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		if l.stop != nil {
			close(l.stop)
		}
	})
}

func (l *Loop) stopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}

func (l *Loop) run(period time.Duration, f func() bool) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			if l.stopped() {
				return
			}
			if !f() {
				l.Stop()
				return
			}
		}
	}
}

// Stop stops a timer that may be nil.
func Stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
