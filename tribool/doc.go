// Package tribool provides three-valued logic and the abstract capability
// interfaces that geometric predicates over Box-like regions are expressed
// against.
//
// Every geometric test in gridpave — does a cell overlap a set, is a cell
// covered by a set, is a cell disjoint from a set — can legitimately answer
// "I don't know" when the evidence available (a bounding box, a single
// sample, a coarse enclosure) cannot decide the question. Collapsing that
// uncertainty to a boolean early throws away information the caller needs:
// an outer approximation driver that cannot tell "maybe overlaps" from
// "definitely does not overlap" would either over- or under-approximate.
// Tribool keeps the third value alive until a leaf decision explicitly
// chooses to resolve it (see the paving package's approximation drivers).
//
// The interfaces BoundedSet, OvertSet, OpenSet, ClosedSet and CompactSet
// model the external, interval-arithmetic-backed "abstract set" collaborators
// that this module treats as out of scope (spec.md §1): gridpave never
// implements a concrete overt/open/closed set, it only consumes one through
// these capability interfaces.
package tribool
