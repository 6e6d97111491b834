package catalog

import (
	"context"

	"git.lost.host/meutraa/flavor/internal/game"
)

type Memory struct {
	items []game.Item
}

// NewMemory is the shop's default menu.
func NewMemory(items ...game.Item) *Memory {
	if len(items) == 0 {
		items = []game.Item{
			{ID: "giiku-sai", Name: "Strawberry", Description: "Shaved ice with strawberry syrup"},
			{ID: "giiku-haku", Name: "Melon", Description: "Shaved ice with melon syrup"},
			{ID: "giiku-ten", Name: "Blue Hawaii", Description: "Shaved ice with blue hawaii syrup"},
			{ID: "giiku-camp", Name: "Orange", Description: "Shaved ice with orange syrup"},
		}
	}
	return &Memory{items: items}
}

func (m *Memory) Items(ctx context.Context) ([]game.Item, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	out := make([]game.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}
