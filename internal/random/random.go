package random

import "math/rand/v2"

// Source is the randomness the scheduler draws from.
type Source interface {
	IntN(n int) int // [0, n)
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func Default() Source { return globalSource{} }

// Replicable source, e.g. for tests or --seed
type seeded struct{ r *rand.Rand }

func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seeded) IntN(n int) int { return s.r.IntN(n) }

// Shuffle is an in-place Fisher-Yates shuffle.
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Perm returns a uniformly shuffled permutation of [0, n).
func Perm(src Source, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(src, p)
	return p
}
