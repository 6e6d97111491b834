package input

import (
	"git.lost.host/meutraa/flavor/internal/game"
	"github.com/gdamore/tcell/v2"
)

// Tcell translates events polled from a tcell screen. Mouse presses map to
// the lane under the pointer.
type Tcell struct {
	screen tcell.Screen
	keymap Keymap
	layout game.Layout
	events chan Event

	mouseLane int // Lane held by the mouse, or -1
}

func NewTcell(screen tcell.Screen, keymap Keymap, layout game.Layout) *Tcell {
	t := newTcell(screen, keymap, layout)
	screen.EnableMouse()
	go t.run()
	return t
}

func newTcell(screen tcell.Screen, keymap Keymap, layout game.Layout) *Tcell {
	return &Tcell{
		screen:    screen,
		keymap:    keymap,
		layout:    layout,
		events:    make(chan Event, 128),
		mouseLane: -1,
	}
}

func (t *Tcell) run() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		var out []Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			out = t.key(ev.Key(), ev.Rune())
		case *tcell.EventMouse:
			col, _ := ev.Position()
			cols, _ := t.screen.Size()
			out = t.mouse(col, cols, ev.Buttons()&tcell.Button1 != 0)
		case *tcell.EventResize:
			t.screen.Sync()
		}
		for _, e := range out {
			t.events <- e
		}
	}
}

func (t *Tcell) key(k tcell.Key, r rune) []Event {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []Event{{Kind: Quit}}
	case tcell.KeyRune:
		return t.keymap.Rune(r, false)
	}
	return nil
}

func (t *Tcell) mouse(col, cols int, pressed bool) []Event {
	var out []Event
	lane := -1
	if pressed && cols > 0 {
		x := (float64(col) + 0.5) * t.layout.Width / float64(cols)
		lane = t.layout.LaneAt(x)
	}
	if lane == t.mouseLane {
		return nil
	}
	if t.mouseLane >= 0 {
		out = append(out, Event{Kind: Release, Lane: t.mouseLane})
	}
	if lane >= 0 {
		out = append(out, Event{Kind: Activate, Lane: lane})
	}
	t.mouseLane = lane
	return out
}

func (t *Tcell) Events() <-chan Event {
	return t.events
}
