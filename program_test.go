package main

import (
	"image/color"
	"strings"
	"sync"
	"testing"

	"git.lost.host/meutraa/flavor/internal/clock"
	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/input"
	"git.lost.host/meutraa/flavor/internal/log"
	"git.lost.host/meutraa/flavor/internal/render"
	"git.lost.host/meutraa/flavor/internal/session"
	"git.lost.host/meutraa/flavor/internal/theme"
)

var (
	settings = game.DefaultSettings()
	items    = []game.Item{
		{ID: "giiku-sai", Name: "Strawberry"},
		{ID: "giiku-haku", Name: "Melon"},
	}
)

type textSurface struct {
	mu    sync.Mutex
	texts []string
}

func (s *textSurface) Clear(color.RGBA) error                          { return nil }
func (s *textSurface) FillRect(x, y, w, h float64, c color.RGBA) error { return nil }
func (s *textSurface) Line(x0, y0, x1, y1 float64, c color.RGBA) error { return nil }
func (s *textSurface) Present() error                                  { return nil }

func (s *textSurface) Text(x, y float64, text string, c color.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	return nil
}

func (s *textSurface) contains(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.texts {
		if strings.Contains(t, text) {
			return true
		}
	}
	return false
}

type fixedScheduler struct {
	notes []game.Note
}

func (f *fixedScheduler) Schedule(items []game.Item) (*game.Chart, error) {
	notes := make([]*game.Note, len(f.notes))
	for i := range f.notes {
		n := f.notes[i]
		notes[i] = &n
	}
	return game.NewChart(notes), nil
}

type harness struct {
	program *Program
	events  chan input.Event
	clock   *clock.Manual
	surface *textSurface
	done    chan error
}

func start(t *testing.T, notes ...game.Note) *harness {
	h := &harness{
		events:  make(chan input.Event),
		clock:   clock.NewManual(),
		surface: &textSurface{},
		done:    make(chan error, 1),
	}
	rules := game.DefaultRules()
	board := render.NewBoard(h.surface, settings.Layout, &theme.DefaultTheme{})
	h.program = NewProgram(items, rules, board, h.events, log.Discard())
	h.program.Session = session.New(session.Config{
		Settings:   settings,
		Rules:      rules,
		Scheduler:  &fixedScheduler{notes: notes},
		Clock:      h.clock,
		OnNavigate: h.program.navigate,
	})
	go func() {
		h.done <- h.program.Run()
	}()
	return h
}

// send blocks until the program has taken the event.
func (h *harness) send(kind input.Kind, lane int) {
	h.events <- input.Event{Kind: kind, Lane: lane}
}

func (h *harness) wait(t *testing.T) {
	if err := <-h.done; nil != err {
		t.Fatal(err)
	}
}

func TestTitleQuit(t *testing.T) {
	h := start(t)
	h.send(input.Quit, 0)
	h.wait(t)

	if !h.surface.contains("Strawberry") || !h.surface.contains("Melon") {
		t.Log("title should list the menu")
		t.Fail()
	}
	if h.program.Session.State() != session.Idle {
		t.Fail()
	}
}

func TestTimeoutShowsSummary(t *testing.T) {
	h := start(t)
	h.send(input.Activate, 0)
	// Taken by the play loop, so the session has started
	h.send(input.Release, 0)

	if h.program.Session.State() != session.Running {
		t.Fatalf("expected a running session, got %v", h.program.Session.State())
	}
	h.clock.Advance(settings.Timeout())

	h.send(input.Quit, 0)
	h.wait(t)

	if h.program.Session.State() != session.FinishedByTimeout {
		t.Fatalf("got %v", h.program.Session.State())
	}
	if !h.surface.contains("MAX COMBO 0") {
		t.Log("summary was not drawn")
		t.Fail()
	}
}

func TestTaggedHitShowsOrder(t *testing.T) {
	hitLine := settings.Layout.HitLine()
	h := start(t,
		game.Note{Index: 0, Lane: 0, Y: hitLine, Tag: "giiku-sai"},
		game.Note{Index: 1, Lane: 1, Y: hitLine - 500},
	)
	h.send(input.Activate, 0)
	h.send(input.Activate, 0)
	h.send(input.Quit, 0)
	h.wait(t)

	if h.program.Session.State() != session.FinishedByTag {
		t.Fatalf("got %v", h.program.Session.State())
	}
	if !h.surface.contains("ORDER") {
		t.Log("order confirmation was not drawn")
		t.Fail()
	}
	if h.surface.contains("MAX COMBO") {
		t.Log("a tagged hit shows the order, not the summary")
		t.Fail()
	}
}

func TestRestartAfterSummary(t *testing.T) {
	h := start(t)
	h.send(input.Activate, 0)
	h.send(input.Release, 0)
	h.clock.Advance(settings.Timeout())

	h.send(input.Restart, 0)
	h.send(input.Release, 0)
	if h.program.Session.State() != session.Running {
		t.Fatalf("expected a new session, got %v", h.program.Session.State())
	}

	h.send(input.Quit, 0)
	h.wait(t)
	if h.program.Session.State() != session.Idle {
		t.Fatalf("quitting should stop the session, got %v", h.program.Session.State())
	}
}

func TestClosedEventsEndTheProgram(t *testing.T) {
	h := start(t)
	h.send(input.Activate, 0)
	close(h.events)
	h.wait(t)
	if h.program.Session.State() != session.Idle {
		t.Fatalf("got %v", h.program.Session.State())
	}
}

func TestMergeControls(t *testing.T) {
	a := make(chan input.Event, 4)
	b := make(chan input.Event, 4)
	a <- input.Event{Kind: input.Activate, Lane: 1}
	a <- input.Event{Kind: input.Quit}
	b <- input.Event{Kind: input.Release, Lane: 2}
	close(a)
	close(b)

	counts := map[input.Kind]int{}
	for ev := range merge(controls(a), b) {
		counts[ev.Kind]++
	}
	if counts[input.Activate] != 0 || counts[input.Quit] != 1 || counts[input.Release] != 1 {
		t.Logf("got %v", counts)
		t.Fail()
	}
}
