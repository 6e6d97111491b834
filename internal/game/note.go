package game

import "image/color"

type Note struct {
	Lane  int // The lane this note falls down
	Index int // Spawn order within the session
	X     float64
	Width float64

	Height float64
	Tag    string // Item id for tagged notes, empty otherwise
	Color  color.RGBA

	// This is state
	Y       float64 // Vertical centre, grows towards and past the hit line
	Hit     bool    // Judged by player input
	Expired bool    // Passed the judge window without being hit
}

// Live reports whether the note can still be judged.
func (note *Note) Live() bool {
	return !note.Hit && !note.Expired
}

func (note *Note) Tagged() bool {
	return note.Tag != ""
}
