package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsepgm/sparse"
)

// BenchmarkInsertSparse measures Insert on a 512×512 grid at ~5% density.
// Complexity per op: O(R + C + chain length).
func BenchmarkInsertSparse(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(42))
	coords := make([][2]int, n*n/20)
	for i := range coords {
		coords[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := sparse.New[uint16](n, n)
		for _, rc := range coords {
			_ = g.Set(1, rc[0], rc[1])
		}
	}
}

// BenchmarkAt measures point lookups on a pre-filled grid.
func BenchmarkAt(b *testing.B) {
	const n = 256
	g, err := sparse.New[int](n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = g.Insert(i+1, i, (i*7)%n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.At(i%n, (i*7)%n)
	}
}
