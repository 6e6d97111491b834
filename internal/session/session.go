// Package session runs one play: the frame loop, input judging and the
// end of session by timeout or by hitting a tagged note.
//
// All state is owned by a Session and guarded by its mutex. The frame loop,
// input handlers and timers may run on different goroutines; each of them
// runs to completion under the lock, so a note is never observed half
// updated and no judgement increment is lost.
package session

import (
	"errors"
	"fmt"
	"sync"

	"git.lost.host/meutraa/flavor/internal/clock"
	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/log"
	"git.lost.host/meutraa/flavor/internal/schedule"
	"git.lost.host/meutraa/flavor/internal/score"
)

// ErrNoItems is returned by Start when there are no taggable items.
var ErrNoItems = errors.New("session: no taggable items loaded")

type State int

const (
	Idle State = iota
	Running
	FinishedByTimeout
	FinishedByTag
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case FinishedByTimeout:
		return "finished (timeout)"
	case FinishedByTag:
		return "finished (tagged hit)"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Painter draws one frame. Any error skips the rest of that frame's drawing.
type Painter interface {
	Background() error
	Note(note game.Note) error
	Overlay(overlay game.Overlay) error
	Present() error
}

type Config struct {
	Settings  game.Settings
	Rules     *game.Rules
	Scheduler schedule.Scheduler
	Clock     clock.Clock
	Painter   Painter // Optional
	Logger    *log.Logger

	// Called after a judgement, outside the lock
	OnJudge func(kind game.Kind)

	// Called at most once per session when a tagged note is hit
	OnNavigate func(nav game.Navigation)
}

type Session struct {
	mu  sync.Mutex
	cfg Config

	state State
	gen   uint64 // Incremented on every start and stop; stale timers compare against it
	chart *game.Chart
	items map[string]game.Item
	score score.Scorer

	held     []bool // Set on activation, cleared on release
	feedback []bool // Set on activation, cleared by a timer

	loop      clock.Timer
	timeout   clock.Timer
	feedbacks []clock.Timer
	done      chan struct{}
}

func New(cfg Config) *Session {
	if cfg.Rules == nil {
		cfg.Rules = game.DefaultRules()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	done := make(chan struct{})
	close(done)
	return &Session{
		cfg:      cfg,
		held:     make([]bool, cfg.Settings.Layout.Lanes),
		feedback: make([]bool, cfg.Settings.Layout.Lanes),
		score:    score.NewAggregator(cfg.Rules),
		done:     done,
	}
}

// Start discards any previous session and begins a new one.
func (s *Session) Start(items []game.Item) error {
	if len(items) == 0 {
		s.cfg.Logger.Warnf("not starting: no taggable items")
		return ErrNoItems
	}
	chart, err := s.cfg.Scheduler.Schedule(items)
	if nil != err {
		if errors.Is(err, schedule.ErrNoItems) {
			return ErrNoItems
		}
		return fmt.Errorf("unable to schedule notes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardownLocked()
	s.finishLocked(Idle)
	s.gen++
	gen := s.gen

	s.chart = chart
	s.items = make(map[string]game.Item, len(items))
	for _, item := range items {
		s.items[item.ID] = item
	}
	s.score = score.NewAggregator(s.cfg.Rules)
	for i := range s.held {
		s.held[i] = false
		s.feedback[i] = false
	}
	s.state = Running
	s.done = make(chan struct{})

	s.loop = s.cfg.Clock.Every(s.cfg.Settings.FramePeriod(), func() bool {
		return s.frame(gen)
	})
	s.timeout = s.cfg.Clock.AfterFunc(s.cfg.Settings.Timeout(), func() {
		s.expire(gen)
	})

	s.cfg.Logger.Infof("session %d started: %d notes, %d tagged", gen, chart.NoteCount, chart.TaggedCount)
	return nil
}

// Stop tears the session down, e.g. when the view goes away.
// It is safe to call at any time and any number of times.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardownLocked()
	s.gen++
	if s.state == Running {
		s.finishLocked(Idle)
		s.chart = nil
		s.cfg.Logger.Infof("session stopped")
	}
}

// teardownLocked cancels the loop together with every session timer.
func (s *Session) teardownLocked() {
	clock.Stop(s.loop)
	clock.Stop(s.timeout)
	for _, t := range s.feedbacks {
		clock.Stop(t)
	}
	s.loop, s.timeout, s.feedbacks = nil, nil, nil
}

func (s *Session) finishLocked(state State) {
	wasRunning := s.state == Running
	s.state = state
	if wasRunning {
		close(s.done)
	}
}

func (s *Session) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != Running {
		return
	}
	s.teardownLocked()
	s.finishLocked(FinishedByTimeout)
	s.cfg.Logger.Infof("session %d timed out, max combo %d", gen, s.score.MaxCombo())
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed when the current session stops running.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *Session) Summary() game.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score.Summary()
}

func (s *Session) Combo() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score.Combo()
}

func (s *Session) LastJudgement() game.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score.Last()
}

// Notes returns a copy of the current notes.
func (s *Session) Notes() []game.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chart == nil {
		return nil
	}
	notes := make([]game.Note, len(s.chart.Notes))
	for i, n := range s.chart.Notes {
		notes[i] = *n
	}
	return notes
}

func (s *Session) Feedback() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bool(nil), s.feedback...)
}
