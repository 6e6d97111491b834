package render

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/theme"
)

// lineHeight is the spacing of text rows on the static screens.
const lineHeight = 24

// Board paints the playfield onto a Surface.
type Board struct {
	Surface Surface
	Layout  game.Layout
	Theme   theme.Theme
}

func NewBoard(surface Surface, layout game.Layout, t theme.Theme) *Board {
	return &Board{Surface: surface, Layout: layout, Theme: t}
}

func (b *Board) Background() error {
	if err := b.Surface.Clear(b.Theme.Background()); nil != err {
		return err
	}
	lane := b.Theme.Lane()
	for i := 0; i < b.Layout.Lanes; i++ {
		left := b.Layout.LaneLeft(i)
		if err := b.Surface.Line(left, 0, left, b.Layout.Height, lane); nil != err {
			return err
		}
	}
	right := b.Layout.LaneLeft(b.Layout.Lanes)
	if err := b.Surface.Line(right, 0, right, b.Layout.Height, lane); nil != err {
		return err
	}
	y := b.Layout.HitLine()
	return b.Surface.Line(b.Layout.Left(), y, right, y, b.Theme.HitLine())
}

func (b *Board) Note(n game.Note) error {
	c := n.Color
	if c == (color.RGBA{}) {
		c = b.Theme.Note()
	}
	return b.Surface.FillRect(n.X, n.Y-n.Height/2, n.Width, n.Height, c)
}

func (b *Board) Overlay(o game.Overlay) error {
	top := b.Layout.HitLine() - b.Layout.BlockHeight/2
	for i, active := range o.Feedback {
		err := b.Surface.FillRect(b.Layout.LaneLeft(i), top, b.Layout.LaneWidth, b.Layout.BlockHeight, b.Theme.Pad(active))
		if nil != err {
			return err
		}
	}

	x := b.Layout.Left() + b.Layout.LaneWidth
	y := b.Layout.Height / 2
	if err := b.Surface.Text(x, y-lineHeight, "COMBO", b.Theme.Text()); nil != err {
		return err
	}
	if err := b.Surface.Text(x, y, fmt.Sprintf("%04d", o.Combo), b.Theme.Text()); nil != err {
		return err
	}

	if o.Last == game.None {
		return nil
	}
	return b.Surface.Text(
		b.Layout.Left()+b.Layout.LaneWidth*1.5,
		b.Layout.HitLine()-60,
		o.Last.String(),
		b.Theme.Judgement(o.Last),
	)
}

func (b *Board) Present() error {
	return b.Surface.Present()
}

// Screen clears the surface and prints lines from a quarter of the way down.
func (b *Board) Screen(lines ...string) error {
	if err := b.Surface.Clear(b.Theme.Background()); nil != err {
		return err
	}
	x := b.Layout.Left()
	y := b.Layout.Height / 4
	for i, line := range lines {
		if err := b.Surface.Text(x, y+float64(i*lineHeight), line, b.Theme.Text()); nil != err {
			return err
		}
	}
	return b.Surface.Present()
}

// Summary shows the judgement counts of a finished session.
func (b *Board) Summary(sum game.Summary, kinds []game.Kind) error {
	lines := make([]string, 0, len(kinds)+5)
	for _, k := range kinds {
		lines = append(lines, fmt.Sprintf("%-5s %4d", k, sum.Counts[k]))
	}
	lines = append(lines,
		fmt.Sprintf("MAX COMBO %d", sum.MaxCombo),
		fmt.Sprintf("MEAN %+.1fpx  STDEV %.1fpx", sum.Mean, sum.Stdev),
		"",
		"r: play again   esc: quit",
	)
	return b.Screen(lines...)
}

// Navigation confirms the item chosen by a tagged hit.
func (b *Board) Navigation(nav game.Navigation) error {
	lines := []string{
		"ORDER",
		nav.Name,
	}
	if nav.Description != "" {
		lines = append(lines, nav.Description)
	}
	lines = append(lines, "", "r: play again   esc: quit")
	return b.Screen(lines...)
}
