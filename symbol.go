package huff

// Symbol represents a symbol in the codec's alphabet.  Values 0 through 255
// are literal byte values; Terminator marks logical end-of-data inside the
// encoded bit stream.  Negative symbols are not valid.
type Symbol int32

const (
	// BitsPerSymbol is the width of a literal symbol in the decoded stream.
	BitsPerSymbol = 8

	// AlphabetSize is the number of literal byte symbols.
	AlphabetSize = 1 << BitsPerSymbol

	// Terminator is the sentinel symbol appended to every encoded stream.
	// It never occurs literally in the input; reaching its leaf tells the
	// decoder the stream is complete.
	Terminator = Symbol(AlphabetSize)

	// NumSymbols counts the literal symbols plus the terminator.
	NumSymbols = AlphabetSize + 1

	// leafValueBits is the width of the leaf symbol field in the tree
	// header, one bit wider than a byte so that Terminator fits.
	leafValueBits = BitsPerSymbol + 1
)

// MagicHeader is the 32-bit constant that opens every compressed stream.
const MagicHeader uint32 = 0xFACE8201
