package huffmantree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder holds the artifacts of encoding one input: its frequency table, the
// tree built from that table, the derived code table, and the encoded bits.
type Encoder struct {
	input string
	freqs FrequencyTable
	tree  *Tree
	codes CodeTable
	bits  Bits
}

// Encode encodes input and returns the bits together with the tree needed to
// decode them.  Empty input yields empty bits and a nil tree.
func Encode(input string) (Bits, *Tree) {
	var e Encoder
	e.Init(input)
	return e.Bits(), e.Tree()
}

// Init initializes this Encoder by encoding input.
//
// Each character is folded, the folded symbols are counted, and a tree and
// code table are built from the counts.  The codes are then emitted in the
// order the characters appear in input.
//
func (e *Encoder) Init(input string) {
	freqs := CountFrequencies(input)
	if len(freqs) == 0 {
		*e = Encoder{
			input: input,
			freqs: freqs,
			codes: make(CodeTable),
			bits:  Bits{},
		}
		return
	}

	tree := NewTree(freqs)
	codes := tree.Codes()

	bits := make(Bits, 0, codes.EncodedSize(freqs))
	for _, r := range input {
		code, found := codes.Lookup(r)
		assert.Assertf(found, "no code for symbol %s", Fold(r))
		bits = append(bits, code...)
	}

	*e = Encoder{
		input: input,
		freqs: freqs,
		tree:  tree,
		codes: codes,
		bits:  bits,
	}
}

// Input returns the raw input this Encoder was initialized with.
func (e Encoder) Input() string {
	return e.input
}

// Frequencies returns the frequency table counted from the input.
func (e Encoder) Frequencies() FrequencyTable {
	return e.freqs
}

// Tree returns the tree built from the input, or nil if the input was empty.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// Codes returns the code table derived from the tree.
func (e Encoder) Codes() CodeTable {
	return e.codes
}

// Bits returns the encoded input.
func (e Encoder) Bits() Bits {
	return e.bits
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tInput() = %q\n", e.input)
	fmt.Fprintf(&buf, "\tLen(Bits()) = %d\n", len(e.bits))
	for _, symbol := range e.codes.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %q x %d\n", symbol, e.codes[symbol].String(), e.freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
