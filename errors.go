package huff

import (
	"fmt"

	"github.com/pkg/errors"
)

// None of these failures are retried internally; each one aborts the
// surrounding compress or decompress call.

// ErrEmptyAlphabet is returned by BuildTree when no symbol has positive
// weight.  The forced terminator weight makes this unreachable through
// CountFrequencies; it guards direct callers.
var ErrEmptyAlphabet = errors.New("huff: no symbols with positive weight")

// ErrNoTerminator rejects a decoded header whose tree is a single
// non-terminator leaf.  Such a stream could never signal logical
// end-of-data.
var ErrNoTerminator = errors.New("huff: header tree cannot encode a terminator")

// IllegalHeaderError reports that a stream does not open with MagicHeader:
// the input is not a compressed stream this package recognizes, or its
// first bytes are corrupted.
type IllegalHeaderError struct {
	Header uint32 // the 32 bits actually read
}

func (e IllegalHeaderError) Error() string {
	return fmt.Sprintf("huff: illegal header 0x%08X, want 0x%08X", e.Header, MagicHeader)
}

// TruncatedHeaderError reports that the bit source was exhausted in the
// middle of the stream header.  Op names the structural read that failed.
type TruncatedHeaderError struct {
	Op  string
	Err error
}

func (e TruncatedHeaderError) Error() string {
	return fmt.Sprintf("huff: stream truncated reading %s: %v", e.Op, e.Err)
}

func (e TruncatedHeaderError) Unwrap() error {
	return e.Err
}

// TruncatedStreamError reports that the bit source was exhausted before the
// terminator leaf was reached: the stream is corrupted or incomplete.
type TruncatedStreamError struct {
	Err error
}

func (e TruncatedStreamError) Error() string {
	return fmt.Sprintf("huff: stream ended before the terminator code: %v", e.Err)
}

func (e TruncatedStreamError) Unwrap() error {
	return e.Err
}

// MissingCodeError reports an input symbol with no code table entry.  It
// cannot occur when the table was built from the same input's frequencies;
// it is checked anyway.
type MissingCodeError struct {
	Symbol Symbol
}

func (e MissingCodeError) Error() string {
	return fmt.Sprintf("huff: no code for symbol %d", e.Symbol)
}
