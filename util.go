package huffmantree

import (
	"math"
)

// addWeight sums two weights using saturating addition.
func addWeight(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
