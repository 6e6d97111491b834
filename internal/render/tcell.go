package render

import (
	"image/color"

	"git.lost.host/meutraa/flavor/internal/game"
	"github.com/gdamore/tcell/v2"
)

// Tcell draws onto a tcell screen. The caller owns the screen.
type Tcell struct {
	screen tcell.Screen
	layout game.Layout
	grid   grid
	bg     tcell.Color
	ready  bool
}

func NewTcell(screen tcell.Screen, layout game.Layout) *Tcell {
	return &Tcell{screen: screen, layout: layout}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Tcell) Clear(c color.RGBA) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		t.ready = false
		return ErrUnavailable
	}
	t.grid = grid{layout: t.layout, cols: cols, rows: rows}
	t.ready = true
	t.bg = rgb(c)
	t.screen.SetStyle(tcell.StyleDefault.Background(t.bg))
	t.screen.Clear()
	return nil
}

func (t *Tcell) FillRect(x, y, w, h float64, c color.RGBA) error {
	if !t.ready {
		return ErrUnavailable
	}
	style := tcell.StyleDefault.Background(rgb(c))
	c0, r0, c1, r1 := t.grid.rect(x, y, w, h)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	return nil
}

func (t *Tcell) Line(x0, y0, x1, y1 float64, c color.RGBA) error {
	if !t.ready {
		return ErrUnavailable
	}
	g := glyph(x0, y0, x1, y1)
	style := tcell.StyleDefault.Foreground(rgb(c)).Background(t.bg)
	t.grid.line(x0, y0, x1, y1, func(col, row int) {
		t.screen.SetContent(col, row, g, nil, style)
	})
	return nil
}

func (t *Tcell) Text(x, y float64, s string, c color.RGBA) error {
	if !t.ready {
		return ErrUnavailable
	}
	style := tcell.StyleDefault.Foreground(rgb(c)).Background(t.bg)
	col, row := t.grid.col(x), t.grid.row(y)
	for _, ch := range s {
		if t.grid.inside(col, row) {
			t.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
	return nil
}

func (t *Tcell) Present() error {
	if !t.ready {
		return ErrUnavailable
	}
	t.screen.Show()
	return nil
}
