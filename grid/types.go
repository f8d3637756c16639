package grid

import "fmt"

// Interval is a closed real interval [Lower, Upper]. It is the per-axis
// building block of Box; gridpave does not perform directed-rounding
// interval arithmetic itself (that is the out-of-scope Float/Interval
// library named in spec.md §1) — Interval here is a plain value used to
// describe lattice and Euclidean boxes.
type Interval struct {
	Lower, Upper float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Midpoint returns the interval's midpoint.
func (iv Interval) Midpoint() float64 { return (iv.Lower + iv.Upper) / 2 }

// Box is an axis-aligned box: one Interval per dimension. Both lattice
// boxes (produced by cell arithmetic) and Euclidean boxes (produced by
// Grid.ToEuclidean) are represented with this type.
type Box []Interval

// Dimension returns len(b).
func (b Box) Dimension() int { return len(b) }

// Measure returns the product of the per-axis widths (area/volume/...).
func (b Box) Measure() float64 {
	m := 1.0
	for _, iv := range b {
		m *= iv.Width()
	}
	return m
}

// Clone returns an independent copy of b.
func (b Box) Clone() Box {
	out := make(Box, len(b))
	copy(out, b)
	return out
}

// String renders b as "[lo,hi]x[lo,hi]x...".
func (b Box) String() string {
	s := ""
	for i, iv := range b {
		if i > 0 {
			s += "x"
		}
		s += fmt.Sprintf("[%g,%g]", iv.Lower, iv.Upper)
	}
	return s
}

// Grid is the affine map origin + lengths ⊙ q between an integer/dyadic
// lattice coordinate q and a Euclidean point. It is a value type: equality
// is structural (Equal), and cells/pavings hold a Grid by value.
type Grid struct {
	origin  []float64
	lengths []float64
}

// New returns the d-dimensional grid with zero origin and unit lengths,
// i.e. the identity map onto the unit lattice.
func New(d int) (Grid, error) {
	if d <= 0 {
		return Grid{}, ErrInvalidDimension
	}
	origin := make([]float64, d)
	lengths := make([]float64, d)
	for i := range lengths {
		lengths[i] = 1.0
	}
	return Grid{origin: origin, lengths: lengths}, nil
}

// NewFromArrays returns the grid with the given per-axis origin and
// lengths. len(origin) must equal len(lengths), and every length must be
// strictly positive.
func NewFromArrays(origin, lengths []float64) (Grid, error) {
	if len(origin) != len(lengths) {
		return Grid{}, ErrDimensionMismatch
	}
	if len(origin) == 0 {
		return Grid{}, ErrInvalidDimension
	}
	for _, l := range lengths {
		if l <= 0 {
			return Grid{}, ErrNonPositiveLength
		}
	}
	o := make([]float64, len(origin))
	l := make([]float64, len(lengths))
	copy(o, origin)
	copy(l, lengths)
	return Grid{origin: o, lengths: l}, nil
}

// NewIsotropic returns a d-dimensional grid repeating a single (origin,
// length) pair across every axis — the Ariadne "extended" grid
// constructor (SPEC_FULL.md §7).
func NewIsotropic(d int, origin, length float64) (Grid, error) {
	if d <= 0 {
		return Grid{}, ErrInvalidDimension
	}
	if length <= 0 {
		return Grid{}, ErrNonPositiveLength
	}
	o := make([]float64, d)
	l := make([]float64, d)
	for i := 0; i < d; i++ {
		o[i] = origin
		l[i] = length
	}
	return Grid{origin: o, lengths: l}, nil
}

// Dimension returns the grid's dimension d.
func (g Grid) Dimension() int { return len(g.origin) }

// Origin returns a copy of the grid's origin vector.
func (g Grid) Origin() []float64 {
	out := make([]float64, len(g.origin))
	copy(out, g.origin)
	return out
}

// Lengths returns a copy of the grid's per-axis length vector.
func (g Grid) Lengths() []float64 {
	out := make([]float64, len(g.lengths))
	copy(out, g.lengths)
	return out
}

// Equal reports whether g and other describe the same affine map.
func (g Grid) Equal(other Grid) bool {
	if len(g.origin) != len(other.origin) {
		return false
	}
	for i := range g.origin {
		if g.origin[i] != other.origin[i] || g.lengths[i] != other.lengths[i] {
			return false
		}
	}
	return true
}

// ToEuclidean maps a lattice box through the grid's affine map.
func (g Grid) ToEuclidean(lattice Box) (Box, error) {
	if lattice.Dimension() != g.Dimension() {
		return nil, ErrDimensionMismatch
	}
	out := make(Box, len(lattice))
	for i, iv := range lattice {
		out[i] = Interval{
			Lower: g.origin[i] + g.lengths[i]*iv.Lower,
			Upper: g.origin[i] + g.lengths[i]*iv.Upper,
		}
	}
	return out, nil
}

// FromEuclidean maps a Euclidean box back to lattice coordinates; the
// inverse of ToEuclidean.
func (g Grid) FromEuclidean(euclidean Box) (Box, error) {
	if euclidean.Dimension() != g.Dimension() {
		return nil, ErrDimensionMismatch
	}
	out := make(Box, len(euclidean))
	for i, iv := range euclidean {
		out[i] = Interval{
			Lower: (iv.Lower - g.origin[i]) / g.lengths[i],
			Upper: (iv.Upper - g.origin[i]) / g.lengths[i],
		}
	}
	return out, nil
}

// PrimaryCellAtHeight returns the lattice box of the primary cell at the
// given height, per spec.md §3: the recursion starts from [0,1] at height
// 0 and at each step doubles in the current direction, alternating by
// parity of the new height (negative direction for odd heights, positive
// for even heights) so that the previous height's box lands on the half
// that primary_cell_path's bit convention and compute_lattice_box's
// halving rule agree on. The same interval is used on every axis.
func PrimaryCellAtHeight(d, height int) (Box, error) {
	if d <= 0 {
		return nil, ErrInvalidDimension
	}
	if height < 0 {
		return nil, fmt.Errorf("grid: height must be non-negative, got %d", height)
	}
	lower, upper := 0.0, 1.0
	for h := 1; h <= height; h++ {
		width := upper - lower
		if h%2 == 1 {
			lower = lower - width
		} else {
			upper = upper + width
		}
	}
	out := make(Box, d)
	for i := range out {
		out[i] = Interval{Lower: lower, Upper: upper}
	}
	return out, nil
}

// SmallestEnclosingPrimaryCellHeight returns the smallest height h such
// that PrimaryCellAtHeight(d, h) contains lattice. It terminates because
// primary cells grow without bound (spec.md §4.2).
func SmallestEnclosingPrimaryCellHeight(lattice Box) (int, error) {
	d := lattice.Dimension()
	if d == 0 {
		return 0, ErrInvalidDimension
	}
	for h := 0; ; h++ {
		pc, err := PrimaryCellAtHeight(d, h)
		if err != nil {
			return 0, err
		}
		if contains(pc, lattice) {
			return h, nil
		}
	}
}

func contains(outer, inner Box) bool {
	for i := range outer {
		if inner[i].Lower < outer[i].Lower || inner[i].Upper > outer[i].Upper {
			return false
		}
	}
	return true
}

// PrimaryCellPath returns the word that descends from the primary cell at
// height hTop to the primary cell at height hBottom, per spec.md §4.2:
// length (hTop - hBottom) * d, emitting d identical bits per intermediate
// height (true for odd, false for even), from hTop down to hBottom+1.
func PrimaryCellPath(d, hTop, hBottom int) ([]bool, error) {
	if d <= 0 {
		return nil, ErrInvalidDimension
	}
	if hTop < hBottom {
		return nil, fmt.Errorf("grid: hTop (%d) must be >= hBottom (%d)", hTop, hBottom)
	}
	word := make([]bool, 0, (hTop-hBottom)*d)
	for h := hTop; h > hBottom; h-- {
		bit := h%2 == 1
		for i := 0; i < d; i++ {
			word = append(word, bit)
		}
	}
	return word, nil
}
