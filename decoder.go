package huffmantree

// Decoder decodes bits produced by Encode, using only the tree that Encode
// returned alongside them.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder for tree.
func NewDecoder(tree *Tree) Decoder {
	return Decoder{tree: tree}
}

// Decode is shorthand for NewDecoder(tree).Decode(bits).
func Decode(bits Bits, tree *Tree) (string, error) {
	return NewDecoder(tree).Decode(bits)
}

// Tree returns the tree this Decoder walks.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode reconstructs the folded input from bits.  It fails with ErrNoTree if
// the Decoder has no usable tree; see Tree.Decode for the other failures.
func (d Decoder) Decode(bits Bits) (string, error) {
	return d.tree.Decode(bits)
}
