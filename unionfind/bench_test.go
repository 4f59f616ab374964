package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
)

// BenchmarkUnion_Random measures random unions followed by a connectivity
// query on a universe of 1<<16 elements.
// Complexity: O(α(n)) amortized per operation.
func BenchmarkUnion_Random(b *testing.B) {
	const n = 1 << 16
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf, err := unionfind.New(n)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		for _, p := range pairs {
			_, _ = uf.Union(p[0], p[1])
		}
		_, _ = uf.Connected(0, n-1)
	}
}
