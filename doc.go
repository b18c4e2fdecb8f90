// Package huffmantree implements Huffman coding over single-character
// symbols.  A frequency table is counted from the input, a binary prefix tree
// is built from it by repeatedly merging the two lightest nodes, and the
// root-to-leaf paths of that tree become the code for each symbol.
//
// Symbols are case-folded before they are counted, so the round trip
//
//     bits, tree := Encode(s)
//     out, err := Decode(bits, tree)
//
// yields the folded form of s.  The tree is not serialized; the decoder must
// be handed the same *Tree that the encoder produced.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffmantree
