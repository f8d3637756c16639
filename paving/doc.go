// Package paving implements GridTreeSubset and GridTreeSet, the views
// and owning container over a BinaryTreeNode paving, plus the
// re-rooting, set-algebra, approximation, restriction, projection and
// serialization drivers built on top of them (spec.md §4.4–§4.6, §6).
//
// GridTreeSet exclusively owns its *bnode.Node subtree; GridTreeSubset is
// a non-owning view bound to the lifetime of whatever owns the node it
// points at — typically a GridTreeSet, but also the transient subtrees
// approximation drivers walk while building one. Mutating operations
// live on GridTreeSet; GridTreeSubset exposes iteration and predicates,
// plus Subdivide, which minces the viewed subtree in place and leaves it
// un-recombined (spec.md §4.4, §4.5).
//
// Every exported GridTreeSet mutator restores canonical (recombined)
// form before returning (spec.md §3, §8 invariant (a)), except
// AlignWithCell, which splits leaves on its descent and leaves them split
// for the caller.
package paving
