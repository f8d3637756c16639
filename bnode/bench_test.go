package bnode_test

import (
	"testing"

	"github.com/elidrake/gridpave/bnode"
)

// BenchmarkMince measures splitting a single enabled leaf down to a
// uniform depth of 16, producing 2^16 enabled leaves. A fresh leaf is
// built outside the timed section on every iteration since a minced
// tree cannot be re-minced to the same depth at the same cost.
// Complexity: O(2^depth)
func BenchmarkMince(b *testing.B) {
	const depth = 16
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		n := bnode.NewLeaf(true)
		b.StartTimer()
		if err := n.Mince(depth); err != nil {
			b.Fatalf("Mince: %v", err)
		}
	}
}

// BenchmarkRecombine measures collapsing a fully minced, uniformly
// enabled tree back into a single leaf. Setup (the mince itself) runs
// outside the timed section.
// Complexity: O(2^depth)
func BenchmarkRecombine(b *testing.B) {
	const depth = 16
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		n := bnode.NewLeaf(true)
		if err := n.Mince(depth); err != nil {
			b.Fatalf("Mince: %v", err)
		}
		b.StartTimer()
		n.Recombine()
	}
}
