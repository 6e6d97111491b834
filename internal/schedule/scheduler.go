package schedule

import (
	"errors"

	"git.lost.host/meutraa/flavor/internal/game"
)

// ErrNoItems is returned when there is nothing to attach to tagged notes.
var ErrNoItems = errors.New("schedule: no taggable items")

type Scheduler interface {
	Schedule(items []game.Item) (*game.Chart, error)
}
