package huffmantree

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// FrequencyTable maps each distinct folded Symbol of an input to the number
// of times it occurs.  Every count is positive.
type FrequencyTable map[Symbol]uint64

// CountFrequencies folds each character of input and tallies it.
func CountFrequencies(input string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, r := range input {
		// a missing key reads as 0
		freqs[Fold(r)]++
	}
	return freqs
}

// Symbols returns the symbols of the table in ascending order.
func (freqs FrequencyTable) Symbols() []Symbol {
	keys := make(bySymbol, 0, len(freqs))
	for symbol := range freqs {
		keys = append(keys, symbol)
	}
	sort.Sort(keys)
	return keys
}

// Total returns the sum of all counts, i.e. the number of folded symbols in
// the original input.
func (freqs FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freqs {
		total = addWeight(total, count)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (freqs FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range freqs.Symbols() {
		fmt.Fprintf(&buf, "\t%s = %d\n", symbol, freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
