package theme

import (
	"image/color"

	"git.lost.host/meutraa/flavor/internal/game"
)

type Theme interface {
	Background() color.RGBA
	Lane() color.RGBA
	HitLine() color.RGBA
	Pad(active bool) color.RGBA
	Note() color.RGBA
	Text() color.RGBA
	Judgement(kind game.Kind) color.RGBA

	// Palette is cycled through to colour menu items
	Palette() []color.RGBA
}
