// Package gridpave is a data structure and algorithm suite for
// representing and manipulating subsets of Euclidean space as unions of
// axis-aligned dyadic cells of a fixed coordinate-aligned grid.
//
// 🚀 What is gridpave?
//
//	A paving engine built around a handful of small, composable types:
//		• word    — BinaryWord, the bit path from a primary cell to a sub-cell
//		• grid    — Grid affine map + primary-cell arithmetic
//		• bnode   — BinaryTreeNode, the canonical enabled/disabled tree algebra
//		• cell    — GridCell / GridOpenCell, a (grid, height, word) triple
//		• tribool — three-valued logic and the abstract-set capability interfaces
//		• paving  — GridTreeSubset (non-owning view) and GridTreeSet (owning paving)
//
// ✨ What it's for
//
//   - Exact set algebra on pavings — union, intersection, difference
//   - Geometric predicates — subset, overlap, covers, all three-valued
//   - Outer/lower/inner approximation of sets known only through a
//     disjoint/overlaps/covers/bounding-box predicate interface
//   - Predicate-driven restriction and removal
//   - Dimension projection and a flat, destructive on-disk tree dump
//
// This is the spatial-indexing and set-storage core of a
// reachability/verification toolkit for continuous and hybrid dynamical
// systems; it carries none of the dynamical-system semantics itself.
//
// Under the hood:
//
//	word/          BinaryWord
//	grid/          Grid, primary-cell arithmetic
//	bnode/         BinaryTreeNode tree algebra
//	cell/          GridCell, GridOpenCell
//	tribool/       three-valued logic + abstract-set capability interfaces
//	paving/        GridTreeSubset, GridTreeSet, Cursor/Iterator, projection,
//	               approximation drivers, serialization
//	internal/plog/ structured logging wrapper
//	cmd/pavectl/   inspection CLI over the persisted tree format
//
//	go get github.com/elidrake/gridpave/paving
package gridpave
