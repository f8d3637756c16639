// Package bnode implements BinaryTreeNode, the compressed binary tree
// that backs a paving: leaves carry an enabled/disabled state, internal
// nodes carry none (spec.md §9, design note "indeterminate leaves during
// construction" — the transient indeterminate tag the source used during
// restore is not needed in a fresh implementation and is omitted here).
//
// Canonical form. A tree is canonical ("recombined") when no internal
// node has two leaf children of equal state. No mutator in this package
// calls Recombine on its own: Split, MakeLeaf, Mince, AddEnabledAtPath,
// PrependTree and the tree-algebra functions Restrict/Remove/AddEnabled
// all leave recombination to their caller — paving.GridTreeSet recombines once
// after a full operation rather than at every intermediate node, which is
// both correct and cheaper.
//
// Ownership. Every *Node is owned by exactly one parent pointer or root
// handle. There are no shared subtrees and no cycles; PrependTree is the
// one operation that looks like sharing but it always "moves" its oldRoot
// argument into the new tree rather than aliasing it from two places.
//
// Complexity: every operation here is O(size of the smaller/aligned
// subtree) and recurses to a depth bounded by tree depth; per spec.md §5
// that depth is bounded by the distance between a paving's root height
// and its most refined cell.
package bnode
