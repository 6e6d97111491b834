package game

// Summary is the read-only result of a finished session.
type Summary struct {
	Counts   map[Kind]int
	MaxCombo int
	Hits     int     // Notes judged by player input
	Mean     float64 // Mean signed offset of player hits, in pixels
	Stdev    float64
}

// Overlay is the transient per-frame feedback drawn over the notes.
type Overlay struct {
	Feedback []bool
	Combo    int
	Last     Kind
}
