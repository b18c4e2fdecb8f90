package huffmantree

import (
	"errors"
	"testing"
)

func TestDecoder(t *testing.T) {
	bits, tree := Encode("My name is varun bansal")

	d := NewDecoder(tree)
	if d.Tree() != tree {
		t.Errorf("Decoder holds the wrong tree")
	}

	out, err := d.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect := "my name is varun bansal"; out != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, out)
	}
}

func TestDecoder_NoTree(t *testing.T) {
	_, err := NewDecoder(nil).Decode(MustParseBits("0101"))
	if !errors.Is(err, ErrNoTree) {
		t.Errorf("expected ErrNoTree, got %v", err)
	}
}

func TestDecoder_Truncated(t *testing.T) {
	bits, tree := Encode("The bird is the word")

	// every code in this tree is at least 3 bits long
	_, err := Decode(bits[:len(bits)-1], tree)
	var truncErr *TruncatedCodeError
	if !errors.As(err, &truncErr) {
		t.Fatalf("expected *TruncatedCodeError, got %v", err)
	}
	if truncErr.Offset != len(bits)-1 {
		t.Errorf("expected offset %d, got %d", len(bits)-1, truncErr.Offset)
	}
}
