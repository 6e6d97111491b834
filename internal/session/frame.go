package session

import "git.lost.host/meutraa/flavor/internal/game"

// frame advances the session by one frame. It returns false once the
// session with this generation is no longer running, which ends the loop.
func (s *Session) frame(gen uint64) bool {
	s.mu.Lock()
	if gen != s.gen || s.state != Running {
		s.mu.Unlock()
		return false
	}

	settings := s.cfg.Settings
	hitLine := settings.Layout.HitLine()
	window := s.cfg.Rules.Window(settings.Speed)
	catchAll := s.cfg.Rules.CatchAll()

	// Static geometry goes first so notes render on top
	drawing := s.paint(func(p Painter) error { return p.Background() })

	var expired []game.Kind
	for _, note := range s.chart.Notes {
		if note.Live() && note.Y-hitLine > window {
			note.Expired = true
			s.score.Record(catchAll)
			expired = append(expired, catchAll.Kind)
		}
	}

	for _, note := range s.chart.Notes {
		note.Y += settings.Speed
	}

	if drawing {
		drawing = s.drawNotesLocked()
	}
	if drawing {
		overlay := game.Overlay{
			Feedback: append([]bool(nil), s.feedback...),
			Combo:    s.score.Combo(),
			Last:     s.score.Last(),
		}
		drawing = s.paint(func(p Painter) error { return p.Overlay(overlay) })
	}
	if drawing {
		s.paint(func(p Painter) error { return p.Present() })
	}
	s.mu.Unlock()

	for _, kind := range expired {
		s.judged(kind)
	}
	return true
}

func (s *Session) drawNotesLocked() bool {
	layout := s.cfg.Settings.Layout
	for _, note := range s.chart.Notes {
		if !note.Live() || note.Y <= -layout.BlockHeight || note.Y >= layout.Height+layout.BlockHeight {
			continue
		}
		n := *note
		if !s.paint(func(p Painter) error { return p.Note(n) }) {
			return false
		}
	}
	return true
}

// paint reports whether drawing may continue this frame.
func (s *Session) paint(f func(p Painter) error) bool {
	if s.cfg.Painter == nil {
		return false
	}
	if err := f(s.cfg.Painter); nil != err {
		s.cfg.Logger.Debugf("skipping frame: %v", err)
		return false
	}
	return true
}

func (s *Session) judged(kind game.Kind) {
	if s.cfg.OnJudge != nil {
		s.cfg.OnJudge(kind)
	}
}
