package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/theme"
	"gopkg.in/yaml.v3"
)

type rawItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type rawMenu struct {
	Items []rawItem `yaml:"items"`
}

// File reads a YAML menu:
//
//	items:
//	  - id: giiku-sai
//	    name: Strawberry
//	    color: "#f00"
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Items(ctx context.Context) ([]game.Item, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if nil != err {
		return nil, fmt.Errorf("unable to read menu: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML menu. Items need an id; colours are optional.
func Parse(data []byte) ([]game.Item, error) {
	var menu rawMenu
	if err := yaml.Unmarshal(data, &menu); nil != err {
		return nil, fmt.Errorf("unable to parse menu: %w", err)
	}
	items := make([]game.Item, 0, len(menu.Items))
	for i, raw := range menu.Items {
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			return nil, fmt.Errorf("menu item %d has no id", i)
		}
		item := game.Item{ID: id, Name: raw.Name, Description: raw.Description}
		if raw.Color != "" {
			c, err := theme.ParseHex(raw.Color)
			if nil != err {
				return nil, fmt.Errorf("menu item %s: %w", id, err)
			}
			item.Color = c
		}
		items = append(items, item)
	}
	return items, nil
}
