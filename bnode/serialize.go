package bnode

// TreeToBinaryWords serializes n's subtree into two bit sequences, per
// spec.md §4.1: treeBits is a pre-order walk where true marks an internal
// node (descend left, then right) and false marks a leaf; leafBits holds
// each leaf's enabled/disabled state in the same pre-order the leaves are
// visited.
func (n *Node) TreeToBinaryWords() (treeBits []bool, leafBits []bool) {
	var walk func(cur *Node)
	walk = func(cur *Node) {
		if cur.leaf {
			treeBits = append(treeBits, false)
			leafBits = append(leafBits, cur.enabled)
			return
		}
		treeBits = append(treeBits, true)
		walk(cur.left)
		walk(cur.right)
	}
	walk(n)
	return treeBits, leafBits
}

// BuildFromBinaryWords reconstructs a tree from the two bit sequences
// produced by TreeToBinaryWords. It returns ErrStructuralViolation if the
// sequences are exhausted before a well-formed tree is read.
func BuildFromBinaryWords(treeBits, leafBits []bool) (*Node, error) {
	ti, li := 0, 0
	var build func() (*Node, error)
	build = func() (*Node, error) {
		if ti >= len(treeBits) {
			return nil, withStack(ErrStructuralViolation)
		}
		bit := treeBits[ti]
		ti++
		if !bit {
			if li >= len(leafBits) {
				return nil, withStack(ErrStructuralViolation)
			}
			leaf := NewLeaf(leafBits[li])
			li++
			return leaf, nil
		}
		left, err := build()
		if err != nil {
			return nil, err
		}
		right, err := build()
		if err != nil {
			return nil, err
		}
		return &Node{leaf: false, left: left, right: right}, nil
	}
	root, err := build()
	if err != nil {
		return nil, err
	}
	if ti != len(treeBits) || li != len(leafBits) {
		return nil, withStack(ErrStructuralViolation)
	}
	return root, nil
}
