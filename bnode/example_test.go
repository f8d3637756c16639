package bnode_test

import (
	"fmt"

	"github.com/elidrake/gridpave/bnode"
)

// ExampleNode_Split shows a disabled leaf splitting into two children
// that inherit its state before one is enabled.
func ExampleNode_Split() {
	n := bnode.NewLeaf(false)
	n.Split()
	n.Left().MakeLeaf(true)
	fmt.Println(n.IsLeaf(), n.Left().IsEnabled(), n.Right().IsEnabled())
	// Output:
	// false true false
}

// ExampleNode_Recombine collapses two sibling leaves that ended up in
// the same state back into a single leaf.
func ExampleNode_Recombine() {
	n := bnode.NewLeaf(false)
	n.Split()
	n.Left().MakeLeaf(true)
	n.Right().MakeLeaf(true)
	n.Recombine()
	fmt.Println(n.IsLeaf(), n.IsEnabled())
	// Output:
	// true true
}

// ExampleNode_Mince splits an enabled leaf down to a uniform depth,
// leaving disabled leaves untouched.
func ExampleNode_Mince() {
	n := bnode.NewLeaf(true)
	_ = n.Mince(2)
	fmt.Println(n.CountEnabledLeaves())
	// Output:
	// 4
}

// ExampleNode_AddEnabledAtPath enables exactly the single leaf named by
// a bit path, splitting internal structure along the way as needed.
func ExampleNode_AddEnabledAtPath() {
	n := bnode.NewLeaf(false)
	_ = n.AddEnabledAtPath([]bool{false, true})
	fmt.Println(n.CountEnabledLeaves())
	// Output:
	// 1
}
