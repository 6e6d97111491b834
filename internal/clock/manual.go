package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic clock for tests. Timers fire from Advance and
// loops run one iteration per Tick, always on the caller's goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
	loops  []*manualLoop
}

type manualTimer struct {
	m       *Manual
	at      time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() {
	t.m.mu.Lock()
	t.stopped = true
	t.m.mu.Unlock()
}

type manualLoop struct {
	m       *Manual
	f       func() bool
	stopped bool
}

func (l *manualLoop) Stop() {
	l.m.mu.Lock()
	l.stopped = true
	l.m.mu.Unlock()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{m: m, at: m.now + d, f: f}
	m.timers = append(m.timers, t)
	return t
}

func (m *Manual) Every(_ time.Duration, f func() bool) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := &manualLoop{m: m, f: f}
	m.loops = append(m.loops, l)
	return l
}

func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves time forward, firing due timers in deadline order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		pending := m.timers[:0]
		for _, t := range m.timers {
			if !t.stopped {
				pending = append(pending, t)
			}
		}
		m.timers = pending
		sort.SliceStable(m.timers, func(i, j int) bool { return m.timers[i].at < m.timers[j].at })

		if len(m.timers) == 0 || m.timers[0].at > target {
			m.now = target
			m.mu.Unlock()
			return
		}
		t := m.timers[0]
		m.timers = m.timers[1:]
		m.now = t.at
		m.mu.Unlock()

		t.f()
	}
}

// Tick runs every live loop once and reports how many ran.
func (m *Manual) Tick() int {
	m.mu.Lock()
	live := make([]*manualLoop, 0, len(m.loops))
	for _, l := range m.loops {
		if !l.stopped {
			live = append(live, l)
		}
	}
	m.loops = live
	m.mu.Unlock()

	ran := 0
	for _, l := range live {
		m.mu.Lock()
		stopped := l.stopped
		m.mu.Unlock()
		if stopped {
			continue
		}
		ran++
		if !l.f() {
			l.Stop()
		}
	}
	return ran
}

// Loops is the number of loops that have not been stopped.
func (m *Manual) Loops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.loops {
		if !l.stopped {
			n++
		}
	}
	return n
}

// Pending is the number of timers that have neither fired nor been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
