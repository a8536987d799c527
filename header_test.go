package huff

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func deserializeTree(t *testing.T, raw []byte) (*Node, error) {
	t.Helper()
	return ReadTree(bitio.NewReader(bytes.NewReader(raw)))
}

func TestWriteTree_SingleLeaf(t *testing.T) {
	root := &Node{Symbol: Terminator, Weight: 1}

	// 1 tag bit, then 100000000 (the terminator's 9-bit value), then
	// zero padding from Close.
	raw := serializeTree(t, root)
	require.Equal(t, []byte{0xC0, 0x00}, raw)
}

func TestTreeRoundTrip(t *testing.T) {
	freqs := freqTableOf(map[Symbol]uint64{
		'e': 120, 't': 90, 'a': 80, 'o': 76, 'n': 70,
		' ': 130, '\n': 12, 0x00: 3, 0xFF: 1, Terminator: 1,
	})
	root, err := BuildTree(freqs)
	require.NoError(t, err)

	rebuilt, err := deserializeTree(t, serializeTree(t, root))
	require.NoError(t, err)

	// Leaf symbols and code assignment survive the round trip bit for
	// bit; weights are not transmitted.
	require.Equal(t, NewCodeTable(root), NewCodeTable(rebuilt))
	require.Equal(t, countLeaves(root), countLeaves(rebuilt))
}

func TestTreeRoundTrip_RandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		freqs := new(FreqTable)
		for symbol := Symbol(0); symbol < Terminator; symbol++ {
			if rng.Intn(4) == 0 {
				freqs[symbol] = uint64(rng.Intn(1 << 20))
			}
		}
		freqs[Terminator] = 1

		root, err := BuildTree(freqs)
		require.NoError(t, err)

		rebuilt, err := deserializeTree(t, serializeTree(t, root))
		require.NoError(t, err)
		require.Equal(t, NewCodeTable(root), NewCodeTable(rebuilt))
	}
}

func TestReadTree_Truncated(t *testing.T) {
	type testRow struct {
		name string
		raw  []byte
	}

	testData := [...]testRow{
		{name: "empty", raw: nil},
		// Every bit is an internal-node tag; the source runs dry
		// before any leaf appears.
		{name: "all internal tags", raw: []byte{0x00}},
		// A leaf tag followed by only 7 of the 9 symbol bits.
		{name: "short leaf field", raw: []byte{0x80}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := deserializeTree(t, row.raw)
			var truncated TruncatedHeaderError
			require.ErrorAs(t, err, &truncated)
		})
	}
}

func TestReadTree_SymbolOutsideAlphabet(t *testing.T) {
	// Leaf tag, then 9-bit value 300: 1 100101100, padded.
	_, err := deserializeTree(t, []byte{0xCB, 0x00})
	require.Error(t, err)
	require.Contains(t, err.Error(), "outside the alphabet")
}
