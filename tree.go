package huff

import (
	"container/heap"
)

// Node is one node of a Huffman prefix tree.  A Node is a leaf when both
// children are nil; otherwise it is internal and both children are non-nil.
// Each node is owned by exactly one parent (or by the root handle), and the
// tree is never mutated once built.
type Node struct {
	Left   *Node
	Right  *Node
	Symbol Symbol // meaningful for leaves only
	Weight uint64
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds the Huffman prefix tree for the given weights.  It
// creates one leaf per symbol with positive weight, then repeatedly removes
// the two lowest-weight nodes and reinserts them merged under a new internal
// node, until a single root remains.  The first node removed becomes the
// left child.
//
// Equal weights are ordered by node creation sequence: leaves are created in
// ascending symbol order before any merge, and each merged node takes the
// next sequence number.  Any deterministic rule produces a valid optimal
// tree; this one keeps the emitted bit stream reproducible across runs.
//
// BuildTree fails with ErrEmptyAlphabet if no symbol has positive weight.
func BuildTree(freqs *FreqTable) (*Node, error) {
	var h nodeHeap
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if weight := freqs[symbol]; weight != 0 {
			h.list = append(h.list, heapNode{
				node: &Node{Symbol: symbol, Weight: weight},
				seq:  len(h.list),
			})
		}
	}
	if h.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	seq := h.Len()
	h.Init()

	for h.Len() > 1 {
		left := heap.Pop(&h).(heapNode)
		right := heap.Pop(&h).(heapNode)
		heap.Push(&h, heapNode{
			node: &Node{
				Left:   left.node,
				Right:  right.node,
				Weight: left.node.Weight + right.node.Weight,
			},
			seq: seq,
		})
		seq++
	}
	return heap.Pop(&h).(heapNode).node, nil
}

// type heapNode + type nodeHeap {{{

type heapNode struct {
	node *Node
	seq  int
}

type nodeHeap struct {
	list []heapNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
