package huffmantree

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CodeTable maps each symbol to its code.
type CodeTable map[Symbol]Bits

// Symbols returns the symbols of the table in ascending order.
func (codes CodeTable) Symbols() []Symbol {
	keys := make(bySymbol, 0, len(codes))
	for symbol := range codes {
		keys = append(keys, symbol)
	}
	sort.Sort(keys)
	return keys
}

// Lookup returns the code for the folded form of r.
func (codes CodeTable) Lookup(r rune) (Bits, bool) {
	code, found := codes[Fold(r)]
	return code, found
}

// IsPrefixFree reports whether no code in the table is a prefix of another.
func (codes CodeTable) IsPrefixFree() bool {
	sorted := make([]string, 0, len(codes))
	for _, code := range codes {
		sorted = append(sorted, code.String())
	}
	sort.Strings(sorted)

	// In lexical order, a code that prefixes any other code also prefixes
	// its immediate successor.
	for index := 1; index < len(sorted); index++ {
		a, b := sorted[index-1], sorted[index]
		if len(a) <= len(b) && b[:len(a)] == a {
			return false
		}
	}
	return true
}

// EncodedSize returns the number of bits needed to encode an input with the
// given frequencies.
func (codes CodeTable) EncodedSize(freqs FrequencyTable) uint64 {
	var total uint64
	for symbol, count := range freqs {
		total = addWeight(total, count*uint64(len(codes[symbol])))
	}
	return total
}

// MarshalJSON renders the table as a JSON object from each symbol's
// character to its code string.
func (codes CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(codes))
	for symbol, code := range codes {
		m[string(rune(symbol))] = code.String()
	}
	return json.Marshal(m)
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (codes CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range codes.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %q\n", symbol, codes[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
