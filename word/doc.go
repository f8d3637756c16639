// Package word implements BinaryWord, the finite ordered bit sequence
// that names a path from a primary cell down to a sub-cell (spec.md §3).
// Bit false denotes the left/lower half of the current subdivision axis,
// true the right/upper half.
//
// BinaryWord is a small value type backed by a []bool; copies are cheap
// for the word lengths this module deals with (bounded by tree depth,
// itself bounded by user-provided accuracy per spec.md §5).
package word
