package game

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

type Kind uint8

const (
	None Kind = iota
	Best
	Good
	Miss
	Poor
)

func (k Kind) String() string {
	switch k {
	case None:
		return ""
	case Best:
		return "BEST"
	case Good:
		return "GOOD"
	case Miss:
		return "MISS"
	case Poor:
		return "POOR"
	}
	return fmt.Sprintf("KIND(%d)", uint8(k))
}

// Band is one tolerance window, expressed as a multiple of the scroll speed.
type Band struct {
	Kind           Kind
	Multiplier     float64 // +Inf for the catch-all band
	ComboContinues bool
	Priority       int // Lower is evaluated first
}

func (b Band) Unbounded() bool {
	return math.IsInf(b.Multiplier, 1)
}

// Contains uses inclusive bounds on both sides.
func (b Band) Contains(offset, speed float64) bool {
	if b.Unbounded() {
		return true
	}
	w := speed * b.Multiplier
	return offset >= -w && offset <= w
}

var (
	ErrNoBands      = errors.New("judgement: no finite bands")
	ErrNoCatchAll   = errors.New("judgement: exactly one unbounded band required")
	ErrBadBand      = errors.New("judgement: invalid band")
	ErrDuplicateKey = errors.New("judgement: duplicate kind or priority")
)

// Rules is an ordered judgement table.
type Rules struct {
	bands    []Band
	catchAll Band
	widest   float64
}

func NewRules(bands ...Band) (*Rules, error) {
	kinds := map[Kind]bool{}
	priorities := map[int]bool{}
	finite, unbounded := 0, 0
	widest := 0.0
	for _, b := range bands {
		if b.Kind == None || math.IsNaN(b.Multiplier) || b.Multiplier <= 0 {
			return nil, fmt.Errorf("%w: %v", ErrBadBand, b)
		}
		if kinds[b.Kind] || priorities[b.Priority] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, b)
		}
		kinds[b.Kind] = true
		priorities[b.Priority] = true
		if b.Unbounded() {
			unbounded++
			continue
		}
		finite++
		if b.Multiplier > widest {
			widest = b.Multiplier
		}
	}
	if finite == 0 {
		return nil, ErrNoBands
	}
	if unbounded != 1 {
		return nil, ErrNoCatchAll
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	r := &Rules{bands: sorted, widest: widest}
	for _, b := range sorted {
		if b.Unbounded() {
			r.catchAll = b
		}
	}
	return r, nil
}

// DefaultRules are the shipped BEST/GOOD/MISS/POOR windows.
func DefaultRules() *Rules {
	r, err := NewRules(
		Band{Kind: Best, Multiplier: 8, ComboContinues: true, Priority: 1},
		Band{Kind: Good, Multiplier: 15, ComboContinues: true, Priority: 2},
		Band{Kind: Miss, Multiplier: 25, ComboContinues: false, Priority: 3},
		Band{Kind: Poor, Multiplier: math.Inf(1), ComboContinues: false, Priority: 4},
	)
	if nil != err {
		panic(err)
	}
	return r
}

// Judge returns the first band in priority order containing offset.
func (r *Rules) Judge(offset, speed float64) (Band, bool) {
	for _, b := range r.bands {
		if b.Contains(offset, speed) {
			return b, true
		}
	}
	return Band{}, false
}

// Window is the half width of the widest finite band at the given speed.
// Input searches inside it, and notes beyond it expire.
func (r *Rules) Window(speed float64) float64 {
	return speed * r.widest
}

func (r *Rules) CatchAll() Band {
	return r.catchAll
}

func (r *Rules) Band(kind Kind) (Band, bool) {
	for _, b := range r.bands {
		if b.Kind == kind {
			return b, true
		}
	}
	return Band{}, false
}

// Kinds lists every kind in priority order.
func (r *Rules) Kinds() []Kind {
	kinds := make([]Kind, len(r.bands))
	for i, b := range r.bands {
		kinds[i] = b.Kind
	}
	return kinds
}
