package paving

import (
	"fmt"

	"github.com/elidrake/gridpave/grid"
)

// ExampleNewSet builds a paving with two adjoined unit-square quadrants
// and reports their combined measure.
func ExampleNewSet() {
	g, err := grid.New(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := NewSet(g)
	if err := s.AdjoinCellFromWord(0, []bool{false, false}); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := s.AdjoinCellFromWord(0, []bool{true, true}); err != nil {
		fmt.Println("error:", err)
		return
	}
	measure, err := s.Measure()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Size(), measure)
	// Output:
	// 2 0.5
}

// ExampleGridTreeSet_Adjoin unions a second paving's enabled cells into
// the first in place. The two source cells are disjoint quadrants that
// do not together fill their parent, so both survive the union's
// recombine pass as separate enabled leaves.
func ExampleGridTreeSet_Adjoin() {
	g, err := grid.New(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a := NewSet(g)
	if err := a.AdjoinCellFromWord(0, []bool{false, false}); err != nil {
		fmt.Println("error:", err)
		return
	}
	b := NewSet(g)
	if err := b.AdjoinCellFromWord(0, []bool{true, true}); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := a.Adjoin(b.AsSubset()); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a.Size())
	// Output:
	// 2
}
