package render

import (
	"math"

	"git.lost.host/meutraa/flavor/internal/game"
)

// grid maps canvas pixels onto a terminal cell grid, zero based.
type grid struct {
	layout     game.Layout
	cols, rows int
}

func (g grid) col(x float64) int {
	return int(math.Floor(x * float64(g.cols) / g.layout.Width))
}

func (g grid) row(y float64) int {
	return int(math.Floor(y * float64(g.rows) / g.layout.Height))
}

func (g grid) inside(c, r int) bool {
	return c >= 0 && r >= 0 && c < g.cols && r < g.rows
}

// rect returns the clipped cell range covered by a rectangle, end exclusive.
func (g grid) rect(x, y, w, h float64) (c0, r0, c1, r1 int) {
	c0, r0 = g.col(x), g.row(y)
	c1, r1 = g.col(x+w), g.row(y+h)
	if c1 == c0 {
		c1++
	}
	if r1 == r0 {
		r1++
	}
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 > g.cols {
		c1 = g.cols
	}
	if r1 > g.rows {
		r1 = g.rows
	}
	return
}

// line walks the cells between two points.
func (g grid) line(x0, y0, x1, y1 float64, plot func(c, r int)) {
	c0, r0 := g.col(x0), g.row(y0)
	c1, r1 := g.col(x1), g.row(y1)
	dc, dr := c1-c0, r1-r0
	steps := abs(dc)
	if abs(dr) > steps {
		steps = abs(dr)
	}
	if steps == 0 {
		if g.inside(c0, r0) {
			plot(c0, r0)
		}
		return
	}
	for i := 0; i <= steps; i++ {
		c := c0 + int(math.Round(float64(dc*i)/float64(steps)))
		r := r0 + int(math.Round(float64(dr*i)/float64(steps)))
		if g.inside(c, r) {
			plot(c, r)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// glyph picks a box drawing character for a line direction.
func glyph(x0, y0, x1, y1 float64) rune {
	if y0 == y1 {
		return '─'
	}
	if x0 == x1 {
		return '│'
	}
	return '•'
}
