package grid_test

import (
	"testing"

	"github.com/elidrake/gridpave/grid"
)

// BenchmarkPrimaryCellAtHeight measures building a primary cell box at a
// moderately large height, dominated by the per-height doubling loop.
// Complexity: O(height)
func BenchmarkPrimaryCellAtHeight(b *testing.B) {
	const height = 64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.PrimaryCellAtHeight(3, height); err != nil {
			b.Fatalf("PrimaryCellAtHeight: %v", err)
		}
	}
}

// BenchmarkSmallestEnclosingPrimaryCellHeight measures the search for the
// smallest primary cell that contains a box far from the origin, which
// must grow the candidate height linearly before it fits.
// Complexity: O(resultHeight)
func BenchmarkSmallestEnclosingPrimaryCellHeight(b *testing.B) {
	lattice := grid.Box{{Lower: 100, Upper: 101}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.SmallestEnclosingPrimaryCellHeight(lattice); err != nil {
			b.Fatalf("SmallestEnclosingPrimaryCellHeight: %v", err)
		}
	}
}
