package huffmantree

import (
	"strconv"
	"unicode"
)

// Symbol represents one case-folded character of the input alphabet.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Fold maps a raw input character onto its canonical Symbol.  Folding is
// rune-for-rune: exactly one Symbol is produced for each rune.
func Fold(r rune) Symbol {
	return Symbol(unicode.ToLower(r))
}

// String returns the symbol as a Go-quoted character literal.
func (s Symbol) String() string {
	return strconv.QuoteRune(rune(s))
}

// bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

// }}}
