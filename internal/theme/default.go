package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"git.lost.host/meutraa/flavor/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) Background() color.RGBA { return black }

func (t *DefaultTheme) Lane() color.RGBA { return white }

func (t *DefaultTheme) HitLine() color.RGBA { return yellow }

func (t *DefaultTheme) Pad(active bool) color.RGBA {
	if active {
		return red
	}
	return dimYellow
}

func (t *DefaultTheme) Note() color.RGBA { return white }

func (t *DefaultTheme) Text() color.RGBA { return white }

func (t *DefaultTheme) Judgement(kind game.Kind) color.RGBA {
	col, ok := judgementColors[kind]
	if !ok {
		return white
	}
	return col
}

func (t *DefaultTheme) Palette() []color.RGBA {
	return append([]color.RGBA(nil), flavorColors...)
}

var (
	black     = color.RGBA{0, 0, 0, 255}
	white     = color.RGBA{255, 255, 255, 255}
	yellow    = color.RGBA{255, 255, 0, 255}
	dimYellow = color.RGBA{128, 128, 0, 255}
	red       = color.RGBA{239, 68, 68, 255}

	flavorColors = []color.RGBA{
		MustParseHex("#f00"), // strawberry
		MustParseHex("#0f0"), // melon
		MustParseHex("#00f"), // blue hawaii
		MustParseHex("#f90"), // orange
		MustParseHex("#c90"), // curry
		MustParseHex("#d0d"),
	}

	judgementColors = map[game.Kind]color.RGBA{
		game.Best: {173, 236, 236, 255},
		game.Good: {0, 236, 128, 255},
		game.Miss: {236, 128, 0, 255},
		game.Poor: {236, 30, 0, 255},
	}
)

// ParseHex reads #rgb and #rrggbb colours.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if nil != err {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if nil != err {
		panic(err)
	}
	return c
}

// Hex formats a colour as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
