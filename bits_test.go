package huffmantree

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseBits(t *testing.T) {
	b, err := ParseBits("0110")
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}
	expectBits := Bits{0, 1, 1, 0}
	if !b.Equal(expectBits) {
		t.Errorf("wrong bits:\n\texpect: %#v\n\tactual: %#v", expectBits, b)
	}
	if actual := b.String(); actual != "0110" {
		t.Errorf("wrong string:\n\texpect: %s\n\tactual: %s", "0110", actual)
	}
	if actual := b.GoString(); actual != `MustParseBits("0110")` {
		t.Errorf("wrong GoString:\n\texpect: %s\n\tactual: %s", `MustParseBits("0110")`, actual)
	}
}

func TestParseBits_Invalid(t *testing.T) {
	_, err := ParseBits("01x1")
	var bitErr *InvalidBitError
	if !errors.As(err, &bitErr) {
		t.Fatalf("expected *InvalidBitError, got %v", err)
	}
	if bitErr.Offset != 2 || bitErr.Value != 'x' {
		t.Errorf("wrong error fields: %+v", *bitErr)
	}
}

func TestBits_HasPrefix(t *testing.T) {
	type testRow struct {
		bits   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{bits: "0110", prefix: "", expect: true},
		{bits: "0110", prefix: "01", expect: true},
		{bits: "0110", prefix: "0110", expect: true},
		{bits: "0110", prefix: "1", expect: false},
		{bits: "01", prefix: "011", expect: false},
	}
	for _, row := range testData {
		t.Run(row.bits+"/"+row.prefix, func(t *testing.T) {
			actual := MustParseBits(row.bits).HasPrefix(MustParseBits(row.prefix))
			if actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestBits_Pack(t *testing.T) {
	b := MustParseBits("1011000011")
	packed := b.Pack()
	expectPacked := []byte{0xb0, 0xc0}
	if !bytes.Equal(expectPacked, packed) {
		t.Errorf("wrong packing:\n\texpect: %#v\n\tactual: %#v", expectPacked, packed)
	}

	unpacked, err := UnpackBits(packed, b.Len())
	if err != nil {
		t.Fatalf("UnpackBits failed: %v", err)
	}
	if !unpacked.Equal(b) {
		t.Errorf("wrong unpacking:\n\texpect: %s\n\tactual: %s", b, unpacked)
	}

	if _, err := UnpackBits(packed, 17); err == nil {
		t.Errorf("expected error unpacking 17 bits from 2 bytes")
	}
}
