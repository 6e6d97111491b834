package session

import (
	"math"

	"git.lost.host/meutraa/flavor/internal/game"
)

// Activate handles a lane press. Presses on a held lane, on an unknown lane
// or outside a running session are ignored, as are presses with no note in
// reach.
func (s *Session) Activate(lane int) {
	s.mu.Lock()
	if s.state != Running || lane < 0 || lane >= len(s.held) || s.held[lane] {
		s.mu.Unlock()
		return
	}
	s.held[lane] = true
	s.feedback[lane] = true
	gen := s.gen
	s.feedbacks = append(s.feedbacks, s.cfg.Clock.AfterFunc(s.cfg.Settings.FeedbackDelay, func() {
		s.clearFeedback(gen, lane)
	}))

	speed := s.cfg.Settings.Speed
	hitLine := s.cfg.Settings.Layout.HitLine()
	note := target(s.chart.Notes, lane, hitLine, s.cfg.Rules.Window(speed))
	if note == nil {
		s.mu.Unlock()
		return
	}

	offset := note.Y - hitLine
	note.Hit = true
	band, _ := s.cfg.Rules.Judge(offset, speed)
	s.score.Record(band)
	s.score.RecordOffset(offset)

	var nav *game.Navigation
	if note.Tagged() {
		s.teardownLocked()
		s.finishLocked(FinishedByTag)
		item, ok := s.items[note.Tag]
		if !ok {
			item = game.Item{ID: note.Tag}
		}
		n := item.Navigation()
		nav = &n
		s.cfg.Logger.Infof("session %d ended on tagged note %d (%s)", gen, note.Index, note.Tag)
	}
	s.mu.Unlock()

	s.judged(band.Kind)
	if nav != nil && s.cfg.OnNavigate != nil {
		s.cfg.OnNavigate(*nav)
	}
}

// Release clears the held flag of a lane.
func (s *Session) Release(lane int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lane >= 0 && lane < len(s.held) {
		s.held[lane] = false
	}
}

// ReleaseAll clears every held lane, as when all touches end.
func (s *Session) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.held {
		s.held[i] = false
	}
}

func (s *Session) clearFeedback(gen uint64, lane int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.feedback[lane] = false
	}
}

// target is the lowest spawn index live note of the lane inside the window.
func target(notes []*game.Note, lane int, hitLine, window float64) *game.Note {
	for _, note := range notes {
		if note.Lane != lane || !note.Live() {
			continue
		}
		if math.Abs(note.Y-hitLine) <= window {
			return note
		}
	}
	return nil
}
