package tribool

import "github.com/elidrake/gridpave/grid"

// Tribool is a three-valued logic result: Definitely, Indeterminate, or
// Impossibly. Geometric predicates in this module return a Tribool rather
// than a bool and must not collapse it except at the specific leaf
// decisions the paving package documents (spec.md §7).
type Tribool int

const (
	// Impossibly means the predicate is definitely false.
	Impossibly Tribool = iota
	// Indeterminate means the available evidence cannot decide the
	// predicate either way.
	Indeterminate
	// Definitely means the predicate is definitely true.
	Definitely
)

// String implements fmt.Stringer.
func (t Tribool) String() string {
	switch t {
	case Impossibly:
		return "impossibly"
	case Definitely:
		return "definitely"
	default:
		return "indeterminate"
	}
}

// And combines two Tribool values the AND-like way: Impossibly if either
// operand is Impossibly, Definitely iff both are Definitely, otherwise
// Indeterminate (spec.md §9).
func And(a, b Tribool) Tribool {
	if a == Impossibly || b == Impossibly {
		return Impossibly
	}
	if a == Definitely && b == Definitely {
		return Definitely
	}
	return Indeterminate
}

// Or combines two Tribool values the OR-like way, dual to And: Definitely
// if either operand is Definitely, Impossibly iff both are Impossibly,
// otherwise Indeterminate.
func Or(a, b Tribool) Tribool {
	if a == Definitely || b == Definitely {
		return Definitely
	}
	if a == Impossibly && b == Impossibly {
		return Impossibly
	}
	return Indeterminate
}

// Not negates a Tribool: Definitely <-> Impossibly, Indeterminate fixed.
func Not(t Tribool) Tribool {
	switch t {
	case Definitely:
		return Impossibly
	case Impossibly:
		return Definitely
	default:
		return Indeterminate
	}
}

// FromBool lifts a plain bool into a Tribool at a leaf decision point —
// the only place collapse from three-valued to boolean is permitted
// (spec.md §7).
func FromBool(b bool) Tribool {
	if b {
		return Definitely
	}
	return Impossibly
}

// BoundedSet is the capability to report a bounding box. Required, as
// part of CompactSet, by the outer approximation driver to seed the
// primary-cell search; the inner and lower drivers take an explicit box.
type BoundedSet interface {
	BoundingBox() grid.Box
}

// OvertSet is the capability to test overlap with a box, without
// necessarily being able to test coverage or disjointness. Approximation
// drivers restricted to this capability produce a coarser lower
// approximation (spec.md §9, Open Question (c)).
type OvertSet interface {
	Overlaps(b grid.Box) Tribool
}

// ClosedSet is the capability to test disjointness with a box.
type ClosedSet interface {
	Disjoint(b grid.Box) Tribool
}

// OpenSet is the capability to test both coverage and overlap with a box.
type OpenSet interface {
	Covers(b grid.Box) Tribool
	Overlaps(b grid.Box) Tribool
}

// CompactSet is a bounded and closed set: the minimum capability needed
// for an outer approximation.
type CompactSet interface {
	BoundedSet
	ClosedSet
}

// SetChecker is a general box predicate, used by the predicate-driven
// restriction/removal drivers (spec.md §4.5) independent of any
// particular geometric set.
type SetChecker interface {
	Check(b grid.Box) Tribool
}

// TaylorSetCache is the opaque collaborator named in spec.md §6: a
// caching hook for an external Taylor set. No driver in this module takes
// or constructs one. Its zero value (nil) means "no cache available" and
// callers must treat cacheNode as opaque.
type TaylorSetCache interface {
	// Disjoint tests disjointness of the (external) Taylor set against b,
	// consulting/populating cache at the given opaque cache node.
	Disjoint(b grid.Box, cacheNode any) Tribool
	BoundingBox() grid.Box
}
