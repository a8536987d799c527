package huff

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents the bit string assigned to one symbol: its root-to-leaf
// path in the prefix tree, most significant bit first, false for a left edge
// and true for a right edge.  A nil Code means the symbol has no assignment.
// An empty non-nil Code is the valid degenerate assignment for a root that
// is itself a leaf.
type Code []bool

// String returns the string representation of this Code.
func (c Code) String() string {
	if len(c) == 0 {
		return "\"\""
	}
	buf := make([]byte, len(c))
	for i, bit := range c {
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return strconv.Quote(string(buf))
}

var _ fmt.Stringer = Code(nil)

// IsPrefixOf reports whether c is a prefix of other.  A code equals itself
// and is therefore its own prefix.
func (c Code) IsPrefixOf(other Code) bool {
	if len(c) > len(other) {
		return false
	}
	for i, bit := range c {
		if other[i] != bit {
			return false
		}
	}
	return true
}

// CodeTable maps each Symbol to its Code.  Entries are nil for symbols that
// do not occur as leaves in the tree the table was generated from.
//
// The set of non-nil codes is prefix-free: every code is a distinct
// root-to-leaf path, and no leaf lies on the path to another.
type CodeTable [NumSymbols]Code

// Code returns the code assigned to symbol, or nil if the symbol has none.
func (t *CodeTable) Code(symbol Symbol) Code {
	return t[symbol]
}

// NewCodeTable walks the tree from root and records, for each leaf, the
// bit string of the path that reaches it.  A root that is itself a leaf
// yields the empty code for its single symbol.
//
// The walk is read-only; the tree is not modified.
func NewCodeTable(root *Node) *CodeTable {
	assert.Assertf(root != nil, "NewCodeTable called with nil root")
	table := new(CodeTable)
	walkCodes(root, make(Code, 0, 16), table)
	return table
}

func walkCodes(node *Node, path Code, table *CodeTable) {
	if node.Leaf() {
		assert.Assertf(node.Symbol >= 0 && node.Symbol < NumSymbols,
			"leaf symbol %d out of range", node.Symbol)
		code := make(Code, len(path))
		copy(code, path)
		table[node.Symbol] = code
		return
	}
	walkCodes(node.Left, append(path, false), table)
	walkCodes(node.Right, append(path, true), table)
}
