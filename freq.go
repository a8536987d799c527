package huff

import (
	"io"

	"github.com/pkg/errors"
)

// FreqTable holds one occurrence count per symbol in the alphabet.
type FreqTable [NumSymbols]uint64

// CountFrequencies reads src to exhaustion and returns the occurrence count
// of every byte value, with the Terminator entry forced to exactly 1.  The
// terminator never occurs literally in the input; its forced weight
// guarantees the encoder can always signal logical completion.
//
// CountFrequencies consumes src.  A caller that needs a second pass, as the
// encoder does, must rewind src afterward.
func CountFrequencies(src io.Reader) (*FreqTable, error) {
	freqs := new(FreqTable)
	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		for _, b := range buf[:n] {
			freqs[b]++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "huff: counting symbol frequencies")
		}
	}
	freqs[Terminator] = 1
	return freqs, nil
}
