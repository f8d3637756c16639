package paving

import (
	"bufio"
	"os"

	"github.com/elidrake/gridpave/bnode"
	"github.com/elidrake/gridpave/grid"
)

// ExportToFile writes s's tree in depth-first pre-order to filename:
// 0x01 then its subtrees for an internal node, 0x00 then a second byte
// (0x01 enabled / 0x00 disabled) for a leaf. No header, length prefix,
// or height is written — the height must be supplied again to
// ImportFromFile by the caller (spec.md §6).
//
// Matching the source's export_to_file, the operation drains s: once
// the tree is on disk, the in-memory root is reset to a single disabled
// leaf, so s no longer holds the data it just persisted.
func ExportToFile(s *GridTreeSet, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return withStack(err)
	}
	w := bufio.NewWriter(f)
	writeErr := writeNode(w, s.root)
	flushErr := w.Flush()
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	if flushErr != nil {
		return withStack(flushErr)
	}
	if closeErr != nil {
		return withStack(closeErr)
	}
	s.root.MakeLeaf(false)
	return nil
}

func writeNode(w *bufio.Writer, n *bnode.Node) error {
	if n.IsLeaf() {
		if err := w.WriteByte(0); err != nil {
			return withStack(err)
		}
		var enabled byte
		if n.IsEnabled() {
			enabled = 1
		}
		if err := w.WriteByte(enabled); err != nil {
			return withStack(err)
		}
		return nil
	}
	if err := w.WriteByte(1); err != nil {
		return withStack(err)
	}
	if err := writeNode(w, n.Left()); err != nil {
		return err
	}
	return writeNode(w, n.Right())
}

// ImportFromFile reads a tree persisted by ExportToFile and returns a
// new paving on g rooted at height, then deletes filename — matching
// the source's import_from_file, which treats the dump file as
// single-use (spec.md §6).
func ImportFromFile(g grid.Grid, height int, filename string) (*GridTreeSet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, withStack(err)
	}
	r := bufio.NewReader(f)
	root, readErr := readNode(r)
	closeErr := f.Close()
	if readErr != nil {
		return nil, readErr
	}
	if closeErr != nil {
		return nil, withStack(closeErr)
	}
	if err := os.Remove(filename); err != nil {
		return nil, withStack(err)
	}
	return NewSetFromRoot(g, height, root), nil
}

func readNode(r *bufio.Reader) (*bnode.Node, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, withStack(err)
	}
	if tag == 0 {
		enabled, err := r.ReadByte()
		if err != nil {
			return nil, withStack(err)
		}
		return bnode.NewLeaf(enabled != 0), nil
	}
	left, err := readNode(r)
	if err != nil {
		return nil, err
	}
	right, err := readNode(r)
	if err != nil {
		return nil, err
	}
	return bnode.NewInternal(left, right), nil
}
