package cell

// SubdivisionsToDepth converts a required per-axis subdivision count into
// a tree depth, accounting for axis cycling (spec.md §4.4,
// SPEC_FULL.md §7). wordLen is the length of the subtree root's word
// (0 if the cell has never been subdivided, giving lastSubdivDim == -1).
// maxSubdivDim is the axis (0-indexed, mod d) that needs the most
// subdivisions, and m is that maximum subdivision count.
//
// The source notes that the lastSubdivDim == -1 branch may be
// unreachable in practice (a freshly constructed root always has an
// empty word); we implement it rather than assume it, per spec.md §9
// Open Question (a) — see DESIGN.md.
func SubdivisionsToDepth(d, wordLen, maxSubdivDim, m int) int {
	var firstSubdivSteps int
	if wordLen == 0 {
		firstSubdivSteps = maxSubdivDim + 1
	} else {
		lastSubdivDim := (wordLen - 1) % d
		dist := maxSubdivDim - lastSubdivDim
		if dist <= 0 {
			dist += d
		}
		firstSubdivSteps = dist
	}
	if m <= 0 {
		return 0
	}
	return firstSubdivSteps + (m-1)*d
}
