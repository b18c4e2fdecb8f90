package huffmantree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman tree built from a FrequencyTable.  A Tree is immutable
// once built and may be read by any number of goroutines.
//
// A Tree built from an empty table has no root.  Codes returns an empty table
// for it and Decode fails with ErrNoTree.
type Tree struct {
	root   Node
	leaves int
	height int
}

// NewTree builds the Huffman tree for freqs.
//
// One leaf per symbol is pushed onto a PriorityQueue in ascending symbol
// order.  The two lightest nodes are then popped (first to the left, second
// to the right) and merged into a new internal node that is pushed back, until
// a single node remains; that node is the root.  For N symbols this takes
// exactly N-1 merges.
//
// If freqs holds exactly one symbol, the root is that symbol's leaf.
//
func NewTree(freqs FrequencyTable) *Tree {
	var pq PriorityQueue
	for _, symbol := range freqs.Symbols() {
		weight := freqs[symbol]
		assert.Assertf(weight != 0, "symbol %s has zero frequency", symbol)
		pq.Push(NewLeaf(symbol, weight))
	}

	var root Node
	for !pq.IsEmpty() {
		a := pq.Pop()
		b := pq.Pop()
		if b == nil {
			root = a
			break
		}
		pq.Push(NewInternal(a, b))
	}

	return &Tree{
		root:   root,
		leaves: len(freqs),
		height: heightOf(root),
	}
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree) Root() Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Empty reports whether the tree has no root.  A nil *Tree is empty.
func (t *Tree) Empty() bool {
	return t == nil || t.root == nil
}

// Leaves returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) Leaves() int {
	if t == nil {
		return 0
	}
	return t.leaves
}

// Height returns the number of edges on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Weight returns the weight of the root, i.e. the length of the input that
// the tree was built from.
func (t *Tree) Weight() uint64 {
	if t.Empty() {
		return 0
	}
	return t.root.Weight()
}

// Codes derives the code table: each symbol maps to the path from the root to
// its leaf, with 0 for each step left and 1 for each step right.
//
// When the root itself is a leaf, its symbol is given the one-bit code "0" so
// that every symbol occurrence still occupies at least one bit.
//
func (t *Tree) Codes() CodeTable {
	codes := make(CodeTable, t.Leaves())
	if t.Empty() {
		return codes
	}
	if leaf, ok := t.root.(*Leaf); ok {
		codes[leaf.symbol] = Bits{0}
		return codes
	}

	// Walk the tree depth-first with an explicit stack of internal nodes.
	// stackItem.x records progress through each node:
	//   x=0 → left child not yet visited
	//   x=1 → left child visited
	//   x=2 → both children visited
	//
	// path always holds the bits from the root down to the node on top of
	// the stack.

	type stackItem struct {
		node *Internal
		x    byte
	}

	stack := make([]stackItem, 0, t.height)
	path := make(Bits, 0, t.height)

	visit := func(child Node, bit byte) {
		path = append(path, bit)
		switch n := child.(type) {
		case *Leaf:
			_, dupe := codes[n.symbol]
			assert.Assertf(!dupe, "symbol %s appears in more than one leaf", n.symbol)
			code := make(Bits, len(path))
			copy(code, path)
			codes[n.symbol] = code
			path = path[:len(path)-1]
		case *Internal:
			stack = append(stack, stackItem{node: n})
		}
	}

	stack = append(stack, stackItem{node: t.root.(*Internal)})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			visit(top.node.left, 0)
		case 1:
			visit(top.node.right, 1)
		case 2:
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	assert.Assertf(len(codes) == t.leaves, "derived %d codes for %d leaves", len(codes), t.leaves)
	return codes
}

// Decode walks the tree once per code in bits and returns the decoded
// symbols.
//
// Each bit selects the left (0) or right (1) child; reaching a leaf emits its
// symbol and restarts the walk at the root.  If the bits run out partway down
// the tree, Decode returns a *TruncatedCodeError.  If a bit is not 0 or 1, or
// selects a child that does not exist, Decode returns an *InvalidBitError.
//
func (t *Tree) Decode(bits Bits) (string, error) {
	if t.Empty() {
		return "", ErrNoTree
	}

	var sb strings.Builder
	sb.Grow(len(bits))

	if leaf, ok := t.root.(*Leaf); ok {
		for offset, bit := range bits {
			if bit != 0 {
				return "", &InvalidBitError{Offset: offset, Value: bit}
			}
			sb.WriteRune(rune(leaf.symbol))
		}
		return sb.String(), nil
	}

	root := t.root.(*Internal)
	node := root
	depth := 0
	for offset, bit := range bits {
		switch child := node.child(bit).(type) {
		case *Leaf:
			sb.WriteRune(rune(child.symbol))
			node = root
			depth = 0
		case *Internal:
			node = child
			depth++
		default:
			return "", &InvalidBitError{Offset: offset, Value: bit}
		}
	}

	if depth != 0 {
		return "", &TruncatedCodeError{Offset: len(bits), Depth: depth}
	}
	return sb.String(), nil
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLeaves() = %d\n", t.Leaves())
	fmt.Fprintf(&buf, "\tHeight() = %d\n", t.Height())
	if !t.Empty() {
		dumpNode(&buf, t.root, "", 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, node Node, label string, indent int) {
	buf.WriteString(strings.Repeat("\t", indent))
	buf.WriteString(label)
	switch n := node.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "Leaf(%s, %d)\n", n.symbol, n.weight)
	case *Internal:
		fmt.Fprintf(buf, "Internal(%d)\n", n.weight)
		dumpNode(buf, n.left, "0: ", indent+1)
		dumpNode(buf, n.right, "1: ", indent+1)
	}
}

func heightOf(node Node) int {
	n, ok := node.(*Internal)
	if !ok {
		return 0
	}
	left, right := heightOf(n.left), heightOf(n.right)
	if left < right {
		return right + 1
	}
	return left + 1
}
