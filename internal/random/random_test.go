package random

import (
	"sort"
	"testing"
)

func TestPermIsPermutation(t *testing.T) {
	src := NewSeeded(7)
	for n := 0; n < 50; n++ {
		p := Perm(src, n)
		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if i != v {
				t.Fatalf("n=%v: not a permutation %v", n, p)
			}
		}
	}
}

func TestSeededIsReplicable(t *testing.T) {
	a, b := Perm(NewSeeded(42), 30), Perm(NewSeeded(42), 30)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced %v and %v", a, b)
		}
	}
}

func TestShuffleUniformFirstPosition(t *testing.T) {
	const n, runs = 4, 40000
	src := NewSeeded(1)
	counts := make([]int, n)
	for r := 0; r < runs; r++ {
		s := []int{0, 1, 2, 3}
		Shuffle(src, s)
		counts[s[0]]++
	}
	for v, c := range counts {
		if c < runs/n*9/10 || c > runs/n*11/10 {
			t.Errorf("value %v led %v times out of %v", v, c, runs)
		}
	}
}

func TestDefaultInRange(t *testing.T) {
	src := Default()
	for i := 0; i < 1000; i++ {
		if v := src.IntN(4); v < 0 || v >= 4 {
			t.Fatalf("out of range %v", v)
		}
	}
}

var result []int

func BenchmarkPerm(b *testing.B) {
	src := NewSeeded(3)
	for n := 0; n < b.N; n++ {
		result = Perm(src, 90)
	}
}
