package score

import (
	"math"

	"git.lost.host/meutraa/flavor/internal/game"
)

// Aggregator tracks combo and judgement counts for one session.
// It is not safe for concurrent use; the session serialises access.
type Aggregator struct {
	combo, maxCombo int
	counts          map[game.Kind]int
	last            game.Kind

	// Welford running statistics of hit offsets
	hits       int
	mean, sum2 float64
}

func NewAggregator(rules *game.Rules) *Aggregator {
	a := &Aggregator{counts: map[game.Kind]int{}}
	for _, k := range rules.Kinds() {
		a.counts[k] = 0
	}
	return a
}

func (a *Aggregator) Record(band game.Band) {
	if band.ComboContinues {
		a.combo++
		if a.combo > a.maxCombo {
			a.maxCombo = a.combo
		}
	} else {
		a.combo = 0
	}
	a.counts[band.Kind]++
	a.last = band.Kind
}

func (a *Aggregator) RecordOffset(offset float64) {
	a.hits++
	d := offset - a.mean
	a.mean += d / float64(a.hits)
	a.sum2 += d * (offset - a.mean)
}

func (a *Aggregator) Combo() int { return a.combo }

func (a *Aggregator) MaxCombo() int { return a.maxCombo }

func (a *Aggregator) Last() game.Kind { return a.last }

func (a *Aggregator) Count(kind game.Kind) int {
	return a.counts[kind]
}

// Stdev is the sample standard deviation, zero below two hits.
func (a *Aggregator) Stdev() float64 {
	if a.hits < 2 {
		return 0
	}
	return math.Sqrt(a.sum2 / float64(a.hits-1))
}

func (a *Aggregator) Summary() game.Summary {
	counts := make(map[game.Kind]int, len(a.counts))
	for k, v := range a.counts {
		counts[k] = v
	}
	return game.Summary{
		Counts:   counts,
		MaxCombo: a.maxCombo,
		Hits:     a.hits,
		Mean:     a.mean,
		Stdev:    a.Stdev(),
	}
}
