package huffmantree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bits represents an ordered sequence of bits.  Each element holds the value
// 0 or 1.  Bits is used both for a single symbol's code and for a whole
// encoded stream.
type Bits []byte

// ParseBits converts a string of '0' and '1' characters into Bits.
func ParseBits(str string) (Bits, error) {
	out := make(Bits, len(str))
	for index := 0; index < len(str); index++ {
		switch ch := str[index]; ch {
		case '0':
			out[index] = 0
		case '1':
			out[index] = 1
		default:
			return nil, &InvalidBitError{Offset: index, Value: ch}
		}
	}
	return out, nil
}

// MustParseBits is like ParseBits but panics on invalid input.
func MustParseBits(str string) Bits {
	b, err := ParseBits(str)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return len(b)
}

// HasPrefix reports whether prefix is a prefix of b.
func (b Bits) HasPrefix(prefix Bits) bool {
	return len(prefix) <= len(b) && bytes.Equal(b[:len(prefix)], prefix)
}

// Equal reports whether b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return bytes.Equal(b, other)
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// GoString returns a Go expression that reconstructs these Bits.
func (b Bits) GoString() string {
	return fmt.Sprintf("MustParseBits(%q)", b.String())
}

// Pack packs the bits into bytes, most significant bit first, padding the
// final byte with zeros.  Pack is an in-memory convenience for measuring the
// size of an encoded stream; use UnpackBits with the original Len to reverse
// it.
func (b Bits) Pack() []byte {
	var buf bytes.Buffer
	buf.Grow((len(b) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for _, bit := range b {
		// bytes.Buffer never fails a write
		_ = w.WriteBool(bit != 0)
	}
	_ = w.Close()
	return buf.Bytes()
}

// UnpackBits is the inverse of Bits.Pack.  It reads exactly n bits from
// data.
func UnpackBits(data []byte, n int) (Bits, error) {
	if n < 0 || n > 8*len(data) {
		return nil, fmt.Errorf("cannot unpack %d bits from %d bytes", n, len(data))
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make(Bits, n)
	for index := 0; index < n; index++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("unpacking bit %d: %w", index, err)
		}
		if bit {
			out[index] = 1
		}
	}
	return out, nil
}

var _ fmt.Stringer = Bits(nil)
var _ fmt.GoStringer = Bits(nil)
