// Package cell implements GridCell and GridOpenCell, the dyadic-cell
// value types addressed by a (grid, height, word) triple, and the
// primary-cell arithmetic — box computation, neighbor finding, ordering —
// that operates on them (spec.md §4.2, §4.3).
//
// Both types are small value types: copying one copies the underlying
// Grid (itself cheap to copy) and the BinaryWord's bit slice. Neither
// type mutates its box independently of (grid, height, word); the box is
// always recomputed from those three fields, cached at construction time
// only to avoid repeating the O(height + len(word)) walk on every query.
package cell
