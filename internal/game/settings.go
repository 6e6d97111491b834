package game

import "time"

// Layout is the playfield geometry in canvas pixels.
type Layout struct {
	Width       float64
	Height      float64
	LaneWidth   float64
	BlockHeight float64
	Lanes       int
}

// HitLine is the y coordinate notes are judged against.
func (l Layout) HitLine() float64 {
	return l.Height - (l.Height*0.16 - l.BlockHeight/2)
}

// Left is the x coordinate of the first lane; lanes are centred.
func (l Layout) Left() float64 {
	return l.Width/2 - float64(l.Lanes)/2*l.LaneWidth
}

func (l Layout) LaneLeft(lane int) float64 {
	return l.Left() + float64(lane)*l.LaneWidth
}

// LaneAt maps a horizontal position to a lane, or -1 outside every lane.
func (l Layout) LaneAt(x float64) int {
	for i := 0; i < l.Lanes; i++ {
		left := l.LaneLeft(i)
		if x >= left && x <= left+l.LaneWidth {
			return i
		}
	}
	return -1
}

type Settings struct {
	Layout Layout

	Speed          float64 // Pixels per frame
	Duration       time.Duration
	Density        int // Notes per second
	FrameRate      int
	LeadOffset     float64 // Extra pixels above the line for the first note
	TrailingBuffer time.Duration
	FeedbackDelay  time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Layout: Layout{
			Width:       800,
			Height:      600,
			LaneWidth:   59,
			BlockHeight: 17,
			Lanes:       4,
		},
		Speed:          9,
		Duration:       30 * time.Second,
		Density:        3,
		FrameRate:      60,
		LeadOffset:     300,
		TrailingBuffer: 2 * time.Second,
		FeedbackDelay:  150 * time.Millisecond,
	}
}

func (s Settings) DurationSeconds() int {
	return int(s.Duration / time.Second)
}

func (s Settings) TotalNotes() int {
	return s.Density * s.DurationSeconds()
}

// BaseSpeed is the number of frames between consecutive spawns.
func (s Settings) BaseSpeed() float64 {
	total := s.TotalNotes()
	if total == 0 {
		return 0
	}
	return float64(s.FrameRate*s.DurationSeconds()) / float64(total)
}

func (s Settings) FramePeriod() time.Duration {
	if s.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.FrameRate)
}

// Timeout is how long a session runs before it ends on its own.
func (s Settings) Timeout() time.Duration {
	return s.Duration + s.TrailingBuffer
}
