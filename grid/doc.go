// Package grid implements the affine map between the integer/dyadic lattice
// that gridpave's trees are addressed over and Euclidean coordinates, plus
// the primary-cell arithmetic shared by the cell and paving packages.
//
// A Grid is a value type: an origin point and a per-axis length, both in
// ℝᵈ. It is freely copied and compared structurally; GridCell and the
// paving types hold one by value rather than by reference.
//
// Complexity:
//
//	– ToEuclidean / FromEuclidean: O(d)
//	– PrimaryCellAtHeight: O(h) per call (doubling recursion), called
//	  rarely relative to tree-walk operations and never on a hot path
//	  without memoization by callers that need it repeatedly.
package grid
