package render

import (
	"errors"
	"image/color"
)

// ErrUnavailable is returned while the surface cannot be drawn to.
var ErrUnavailable = errors.New("render: surface unavailable")

// Surface is a 2D drawing target in canvas pixel coordinates.
type Surface interface {
	Clear(c color.RGBA) error
	FillRect(x, y, w, h float64, c color.RGBA) error
	Line(x0, y0, x1, y1 float64, c color.RGBA) error
	Text(x, y float64, s string, c color.RGBA) error
	Present() error
}
