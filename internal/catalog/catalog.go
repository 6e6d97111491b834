// Package catalog supplies the orderable items that tagged notes carry.
package catalog

import (
	"context"
	"image/color"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/flavor/internal/game"
)

type Source interface {
	Items(ctx context.Context) ([]game.Item, error)
}

// Colorize gives every item without a colour one from the palette,
// cycling when there are more items than colours.
func Colorize(items []game.Item, palette []color.RGBA) []game.Item {
	out := make([]game.Item, len(items))
	copy(out, items)
	if len(palette) == 0 {
		return out
	}
	for i := range out {
		if out[i].Color == (color.RGBA{}) {
			out[i].Color = palette[i%len(palette)]
		}
	}
	return out
}

// Open picks a source by file extension; an empty path is the built in menu.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		if path == "" {
			return NewMemory(), nil
		}
	case ".yaml", ".yml":
		return NewFile(path), nil
	}
	db, err := OpenSQLite(path)
	if nil != err {
		return nil, err
	}
	return db, nil
}
