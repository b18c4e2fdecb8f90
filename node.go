package huffmantree

// Node is a node of a Huffman tree.  Every Node is either a *Leaf or an
// *Internal; no other implementations exist.
type Node interface {
	// Weight returns the total frequency of all leaves under this node.
	Weight() uint64

	// IsLeaf reports whether this node is a *Leaf.
	IsLeaf() bool

	isNode()
}

// Leaf is a Node that holds exactly one Symbol and no children.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// Internal is a Node that holds exactly two children and no Symbol.
type Internal struct {
	weight uint64
	left   Node
	right  Node
}

// NewLeaf constructs a leaf for symbol occurring weight times.
func NewLeaf(symbol Symbol, weight uint64) *Leaf {
	return &Leaf{symbol: symbol, weight: weight}
}

// NewInternal constructs an internal node owning left and right.  Its weight
// is the sum of its children's weights.
func NewInternal(left, right Node) *Internal {
	return &Internal{
		weight: addWeight(left.Weight(), right.Weight()),
		left:   left,
		right:  right,
	}
}

// Symbol returns the symbol held by this leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the symbol's frequency.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

// IsLeaf returns true.
func (leaf *Leaf) IsLeaf() bool {
	return true
}

func (leaf *Leaf) isNode() {}

// Left returns the child reached by a 0 bit.
func (node *Internal) Left() Node {
	return node.left
}

// Right returns the child reached by a 1 bit.
func (node *Internal) Right() Node {
	return node.right
}

// Weight returns the sum of the children's weights.
func (node *Internal) Weight() uint64 {
	return node.weight
}

// IsLeaf returns false.
func (node *Internal) IsLeaf() bool {
	return false
}

func (node *Internal) isNode() {}

// child returns the child selected by bit, or nil if bit is not 0 or 1.
func (node *Internal) child(bit byte) Node {
	switch bit {
	case 0:
		return node.left
	case 1:
		return node.right
	default:
		return nil
	}
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
