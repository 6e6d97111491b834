package schedule

import (
	"image/color"

	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/random"
)

type DefaultScheduler struct {
	Settings game.Settings
	Rand     random.Source
	Color    color.RGBA // Colour of untagged notes
}

func NewDefaultScheduler(settings game.Settings, src random.Source, c color.RGBA) *DefaultScheduler {
	return &DefaultScheduler{Settings: settings, Rand: src, Color: c}
}

// spawnY places note i so it reaches the hit line baseSpeed*i frames after
// the first one, which itself starts LeadOffset pixels above the line.
func (s *DefaultScheduler) spawnY(i int) float64 {
	return s.Settings.Layout.HitLine() -
		s.Settings.BaseSpeed()*s.Settings.Speed*float64(i) -
		s.Settings.LeadOffset
}

// assignItems maps spawn index to item for a random distinct index subset.
func (s *DefaultScheduler) assignItems(items []game.Item, total int) map[int]game.Item {
	count := len(items)
	if total < count {
		count = total
	}

	indices := random.Perm(s.Rand, total)[:count]

	shuffled := make([]game.Item, len(items))
	copy(shuffled, items)
	random.Shuffle(s.Rand, shuffled)

	assigned := make(map[int]game.Item, count)
	for i, index := range indices {
		assigned[index] = shuffled[i]
	}
	return assigned
}

func (s *DefaultScheduler) Schedule(items []game.Item) (*game.Chart, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	src := s.Rand
	if src == nil {
		src = random.Default()
		s.Rand = src
	}

	layout := s.Settings.Layout
	total := s.Settings.TotalNotes()
	assigned := s.assignItems(items, total)

	notes := make([]*game.Note, 0, total)
	for i := 0; i < total; i++ {
		lane := src.IntN(layout.Lanes)
		note := &game.Note{
			Lane:   lane,
			Index:  i,
			X:      layout.LaneLeft(lane),
			Y:      s.spawnY(i),
			Width:  layout.LaneWidth,
			Height: layout.BlockHeight,
			Color:  s.Color,
		}
		if item, ok := assigned[i]; ok {
			note.Tag = item.ID
			note.Color = item.Color
		}
		notes = append(notes, note)
	}

	return game.NewChart(notes), nil
}
