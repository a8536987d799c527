package huff

import (
	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// The tree header is a recursive preorder encoding: an internal node is a
// single 0 bit followed by its left then right subtree, and a leaf is a
// single 1 bit followed by the leaf's symbol as a 9-bit field.  Weights are
// not transmitted; decoding never needs them.

// WriteTree serializes the tree rooted at root to w.
func WriteTree(w *bitio.Writer, root *Node) error {
	if root.Leaf() {
		assert.Assertf(root.Symbol >= 0 && root.Symbol <= Terminator,
			"leaf symbol %d does not fit the %d-bit field", root.Symbol, leafValueBits)
		if err := w.WriteBool(true); err != nil {
			return errors.Wrap(err, "huff: writing leaf tag")
		}
		if err := w.WriteBits(uint64(root.Symbol), leafValueBits); err != nil {
			return errors.Wrap(err, "huff: writing leaf symbol")
		}
		return nil
	}
	if err := w.WriteBool(false); err != nil {
		return errors.Wrap(err, "huff: writing internal node tag")
	}
	if err := WriteTree(w, root.Left); err != nil {
		return err
	}
	return WriteTree(w, root.Right)
}

// ReadTree reconstructs a tree serialized by WriteTree.  The rebuilt tree
// has the same leaf symbols and the same shape, and therefore assigns the
// same prefix-free codes; node weights are not transmitted and stay zero.
//
// ReadTree fails with a TruncatedHeaderError if r runs out of bits before
// the recursive structure is complete.
func ReadTree(r *bitio.Reader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r *bitio.Reader, depth int) (*Node, error) {
	// A tree over a 257-symbol alphabet has at most 257 leaves and so
	// never nests deeper than NumSymbols.  Anything deeper is a corrupt
	// header, not a tree.
	if depth > NumSymbols {
		return nil, errors.New("huff: header tree nests deeper than the alphabet allows")
	}

	tag, err := r.ReadBool()
	if err != nil {
		return nil, TruncatedHeaderError{Op: "tree tag bit", Err: err}
	}
	if !tag {
		left, err := readTree(r, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readTree(r, depth+1)
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil
	}
	value, err := r.ReadBits(leafValueBits)
	if err != nil {
		return nil, TruncatedHeaderError{Op: "leaf symbol field", Err: err}
	}
	if value > uint64(Terminator) {
		return nil, errors.Errorf("huff: leaf symbol %d outside the alphabet", value)
	}
	return &Node{Symbol: Symbol(value)}, nil
}
