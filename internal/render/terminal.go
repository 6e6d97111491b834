package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/flavor/internal/game"
	"golang.org/x/term"
)

// Terminal draws with ANSI truecolour escapes, one cell per block.
type Terminal struct {
	out          io.Writer
	fd           int
	size         func() (cols, rows int, err error)
	layout       game.Layout
	buffer       strings.Builder
	restoreState *term.State
	grid         grid
	ready        bool
}

func NewTerminal(f *os.File, layout game.Layout) *Terminal {
	fd := int(f.Fd())
	return &Terminal{
		out:    f,
		fd:     fd,
		layout: layout,
		size:   func() (int, int, error) { return term.GetSize(fd) },
	}
}

func (r *Terminal) Init() error {
	state, err := term.MakeRaw(r.fd)
	if nil != err {
		return err
	}
	r.restoreState = state

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *Terminal) Deinit() error {
	fmt.Fprintf(r.out, "%s%s%s",
		"\033[0m",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

// Clear starts a new frame. The terminal size is read once per frame.
func (r *Terminal) Clear(c color.RGBA) error {
	r.buffer.Reset()
	cols, rows, err := r.size()
	if nil != err || cols <= 0 || rows <= 0 {
		r.ready = false
		return ErrUnavailable
	}
	r.grid = grid{layout: r.layout, cols: cols, rows: rows}
	r.ready = true
	r.background(c)
	r.buffer.WriteString("\033[2J")
	return nil
}

func (r *Terminal) FillRect(x, y, w, h float64, c color.RGBA) error {
	if !r.ready {
		return ErrUnavailable
	}
	c0, r0, c1, r1 := r.grid.rect(x, y, w, h)
	if c0 >= c1 {
		return nil
	}
	span := strings.Repeat(" ", c1-c0)
	r.background(c)
	for row := r0; row < r1; row++ {
		r.move(row, c0)
		r.buffer.WriteString(span)
	}
	r.buffer.WriteString("\033[0m")
	return nil
}

func (r *Terminal) Line(x0, y0, x1, y1 float64, c color.RGBA) error {
	if !r.ready {
		return ErrUnavailable
	}
	g := string(glyph(x0, y0, x1, y1))
	r.foreground(c)
	r.grid.line(x0, y0, x1, y1, func(col, row int) {
		r.move(row, col)
		r.buffer.WriteString(g)
	})
	r.buffer.WriteString("\033[0m")
	return nil
}

func (r *Terminal) Text(x, y float64, s string, c color.RGBA) error {
	if !r.ready {
		return ErrUnavailable
	}
	col, row := r.grid.col(x), r.grid.row(y)
	if !r.grid.inside(0, row) {
		return nil
	}
	if col < 0 {
		col = 0
	}
	r.foreground(c)
	r.move(row, col)
	r.buffer.WriteString(s)
	r.buffer.WriteString("\033[0m")
	return nil
}

func (r *Terminal) Present() error {
	if !r.ready {
		return ErrUnavailable
	}
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}

// move positions the cursor at a zero based cell.
func (r *Terminal) move(row, col int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row + 1))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(col + 1))
	r.buffer.WriteString("H")
}

func (r *Terminal) background(c color.RGBA) {
	r.sgr(48, c)
}

func (r *Terminal) foreground(c color.RGBA) {
	r.sgr(38, c)
}

func (r *Terminal) sgr(kind int, c color.RGBA) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(kind))
	r.buffer.WriteString(";2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
}
