package huff

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Compress reads src in full and writes one compressed stream to dst: the
// magic word, the serialized code tree, one code per input byte, and the
// terminator's code.
//
// Compress makes two passes over src: one to count byte frequencies and one
// to encode.  Between the passes it rewinds src with Seek(0, io.SeekStart);
// if the rewind fails, compression aborts rather than encode from the wrong
// position.  The bit sink is flushed on both success and failure paths, but
// a stream whose Compress call returned an error is incomplete and should
// be discarded by the caller.
func Compress(src io.ReadSeeker, dst io.Writer) error {
	w := bitio.NewWriter(dst)
	if err := compress(src, w); err != nil {
		_ = w.Close()
		return err
	}
	return errors.Wrap(w.Close(), "huff: closing bit sink")
}

func compress(src io.ReadSeeker, w *bitio.Writer) error {
	freqs, err := CountFrequencies(src)
	if err != nil {
		return err
	}
	root, err := BuildTree(freqs)
	if err != nil {
		return err
	}
	table := NewCodeTable(root)

	if err := w.WriteBits(uint64(MagicHeader), 32); err != nil {
		return errors.Wrap(err, "huff: writing magic word")
	}
	if err := WriteTree(w, root); err != nil {
		return err
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "huff: rewinding input for the encode pass")
	}
	if err := encode(src, table, w); err != nil {
		return err
	}
	return writeCode(w, table.Code(Terminator), Terminator)
}

// encode re-reads src in full and emits each byte's code bits in order.
func encode(src io.Reader, table *CodeTable, w *bitio.Writer) error {
	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		for _, b := range buf[:n] {
			symbol := Symbol(b)
			if werr := writeCode(w, table.Code(symbol), symbol); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "huff: reading input for the encode pass")
		}
	}
}

// writeCode emits code most-significant-bit first.  A nil code means the
// frequency pass and the encode pass disagree about the input; that is a
// MissingCodeError, not silence.
func writeCode(w *bitio.Writer, code Code, symbol Symbol) error {
	if code == nil {
		return MissingCodeError{Symbol: symbol}
	}
	for _, bit := range code {
		if err := w.WriteBool(bit); err != nil {
			return errors.Wrap(err, "huff: writing code bits")
		}
	}
	return nil
}
