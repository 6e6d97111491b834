package score

import "git.lost.host/meutraa/flavor/internal/game"

type Scorer interface {
	// Record applies one judgement to the running totals
	Record(band game.Band)

	// RecordOffset adds the signed offset of a player hit to the statistics
	RecordOffset(offset float64)

	Combo() int
	MaxCombo() int
	Last() game.Kind
	Summary() game.Summary
}
