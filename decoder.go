package huff

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Decompress reads one compressed stream from src and writes the decoded
// bytes to dst.
//
// It fails with an IllegalHeaderError if the stream does not open with the
// magic word, with a TruncatedHeaderError if the stream ends inside the
// tree header, and with a TruncatedStreamError if the stream ends before
// the terminator code is reached.  The output writer is flushed on both
// success and failure paths; output produced before a failure is partial
// and should be discarded by the caller.
func Decompress(src io.Reader, dst io.Writer) error {
	r := bitio.NewReader(bufio.NewReader(src))
	w := bufio.NewWriter(dst)
	err := decompress(r, w)
	if ferr := w.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "huff: flushing decoded output")
	}
	return err
}

func decompress(r *bitio.Reader, w *bufio.Writer) error {
	magic, err := r.ReadBits(32)
	if err != nil {
		return TruncatedHeaderError{Op: "magic word", Err: err}
	}
	if uint32(magic) != MagicHeader {
		return IllegalHeaderError{Header: uint32(magic)}
	}

	root, err := ReadTree(r)
	if err != nil {
		return err
	}

	// A root that is itself a leaf assigns the empty code, so no payload
	// bits follow.  If that leaf is the terminator the stream decodes to
	// empty output; any other single-leaf tree can never signal
	// end-of-data and is rejected instead of walked.
	if root.Leaf() {
		if root.Symbol == Terminator {
			return nil
		}
		return ErrNoTerminator
	}

	node := root
	for {
		bit, err := r.ReadBool()
		if err != nil {
			return TruncatedStreamError{Err: err}
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.Leaf() {
			if node.Symbol == Terminator {
				return nil
			}
			if err := w.WriteByte(byte(node.Symbol)); err != nil {
				return errors.Wrap(err, "huff: writing decoded byte")
			}
			node = root
		}
	}
}
