package score

import (
	"math"
	"testing"

	"git.lost.host/meutraa/flavor/internal/game"
)

func band(rules *game.Rules, kind game.Kind) game.Band {
	b, _ := rules.Band(kind)
	return b
}

func TestCountsStartAtZero(t *testing.T) {
	a := NewAggregator(game.DefaultRules())
	s := a.Summary()
	if len(s.Counts) != 4 {
		t.Fatalf("expected 4 kinds, got %v", s.Counts)
	}
	for k, v := range s.Counts {
		if v != 0 {
			t.Errorf("%v starts at %v", k, v)
		}
	}
	if a.Last() != game.None {
		t.Errorf("expected no last judgement, got %v", a.Last())
	}
}

func TestComboRules(t *testing.T) {
	rules := game.DefaultRules()
	a := NewAggregator(rules)
	sequence := []struct {
		Kind     game.Kind
		Combo    int
		MaxCombo int
	}{
		{game.Best, 1, 1},
		{game.Good, 2, 2},
		{game.Best, 3, 3},
		{game.Miss, 0, 3},
		{game.Good, 1, 3},
		{game.Poor, 0, 3},
		{game.Best, 1, 3},
		{game.Best, 2, 3},
		{game.Best, 3, 3},
		{game.Best, 4, 4},
	}
	for i, step := range sequence {
		a.Record(band(rules, step.Kind))
		if a.Combo() != step.Combo || a.MaxCombo() != step.MaxCombo {
			t.Fatalf("step %v (%v): combo %v/%v, expected %v/%v",
				i, step.Kind, a.Combo(), a.MaxCombo(), step.Combo, step.MaxCombo)
		}
		if a.Last() != step.Kind {
			t.Fatalf("step %v: last %v", i, a.Last())
		}
	}
	s := a.Summary()
	expected := map[game.Kind]int{game.Best: 6, game.Good: 2, game.Miss: 1, game.Poor: 1}
	for k, v := range expected {
		if s.Counts[k] != v {
			t.Errorf("%v: got %v, expected %v", k, s.Counts[k], v)
		}
	}
	if s.MaxCombo != 4 {
		t.Errorf("max combo %v", s.MaxCombo)
	}
}

func TestMaxComboNeverDecreases(t *testing.T) {
	rules := game.DefaultRules()
	kinds := rules.Kinds()
	a := NewAggregator(rules)
	prev := 0
	// deterministic but irregular sequence
	for i := 0; i < 500; i++ {
		a.Record(band(rules, kinds[(i*i+3*i)%len(kinds)]))
		if a.MaxCombo() < prev || a.MaxCombo() < a.Combo() {
			t.Fatalf("step %v: max %v prev %v combo %v", i, a.MaxCombo(), prev, a.Combo())
		}
		prev = a.MaxCombo()
	}
}

func TestSummaryIsACopy(t *testing.T) {
	rules := game.DefaultRules()
	a := NewAggregator(rules)
	s := a.Summary()
	s.Counts[game.Best] = 99
	if a.Count(game.Best) != 0 {
		t.Fatal("summary shares its map with the aggregator")
	}
}

func TestOffsetStatistics(t *testing.T) {
	a := NewAggregator(game.DefaultRules())
	if a.Stdev() != 0 {
		t.Fail()
	}
	for _, o := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		a.RecordOffset(o)
	}
	s := a.Summary()
	if s.Hits != 8 || math.Abs(s.Mean-5) > 1e-9 {
		t.Fatalf("hits %v mean %v", s.Hits, s.Mean)
	}
	// sample variance 32/7
	if math.Abs(s.Stdev-math.Sqrt(32.0/7.0)) > 1e-9 {
		t.Errorf("stdev %v", s.Stdev)
	}
}

var result game.Summary

func BenchmarkRecord(b *testing.B) {
	rules := game.DefaultRules()
	a := NewAggregator(rules)
	best := band(rules, game.Best)
	for n := 0; n < b.N; n++ {
		a.Record(best)
		a.RecordOffset(float64(n % 7))
	}
	result = a.Summary()
}
