package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/percolation"
)

// BenchmarkOpen_UntilPercolates opens random sites of a 200×200 grid until
// it percolates.
// Complexity: O(n²·α(n²)) per iteration.
func BenchmarkOpen_UntilPercolates(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	order := r.Perm(n * n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := percolation.New(n)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		for _, k := range order {
			_ = g.Open(k/n+1, k%n+1)
			if g.Percolates() {
				break
			}
		}
	}
}

// BenchmarkOpenClusters measures the BFS cluster listing on a half-open
// 500×500 grid.
// Complexity: O(n²).
func BenchmarkOpenClusters(b *testing.B) {
	const n = 500
	r := rand.New(rand.NewSource(42))
	g, err := percolation.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for k := 0; k < n*n/2; k++ {
		_ = g.Open(r.Intn(n)+1, r.Intn(n)+1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.OpenClusters()
	}
}
