package huffmantree

import (
	"errors"
	"fmt"
)

// ErrNoTree is returned when decoding is attempted without a usable tree,
// e.g. against the nil tree that Encode returns for empty input.
var ErrNoTree = errors.New("huffman tree has no root")

// TruncatedCodeError is returned when the bits run out partway down the
// tree, i.e. the stream does not end on a complete code.
type TruncatedCodeError struct {
	// Offset is the number of bits consumed before the input ran out.
	Offset int

	// Depth is how far below the root the walk had descended.
	Depth int
}

// Error fulfills the error interface.
func (err *TruncatedCodeError) Error() string {
	return fmt.Sprintf("truncated Huffman code: input ended after %d bits, %d bits into an incomplete code", err.Offset, err.Depth)
}

// InvalidBitError is returned when a bit sequence holds a value that is not
// a valid bit, or a bit that leads to no node in the tree.
type InvalidBitError struct {
	Offset int
	Value  byte
}

// Error fulfills the error interface.
func (err *InvalidBitError) Error() string {
	if err.Value == 0 || err.Value == 1 {
		return fmt.Sprintf("invalid bit at offset %d: bit %d does not lead to a node", err.Offset, err.Value)
	}
	return fmt.Sprintf("invalid bit at offset %d: %q is not 0 or 1", err.Offset, err.Value)
}

var (
	_ error = (*TruncatedCodeError)(nil)
	_ error = (*InvalidBitError)(nil)
)
