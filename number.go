package koremutake

import (
	"math/big"
)

// Number is a non-negative integer that marshals to and from koremutake text,
// so it can be used directly as a JSON string or a flag value.
//
// MinSyllables is the padding applied by MarshalText. UnmarshalText sets it
// to the syllable count of the decoded text, which keeps padded values stable
// across a decode/encode cycle.
type Number struct {
	Value        big.Int
	MinSyllables int
}

// NewNumber returns a Number holding v with no padding.
func NewNumber(v uint64) *Number {
	n := &Number{}
	n.Value.SetUint64(v)
	return n
}

// MarshalText implements encoding.TextMarshaler.
func (n *Number) MarshalText() ([]byte, error) {
	return AppendEncode(nil, &n.Value, n.MinSyllables)
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On error n is left unchanged.
func (n *Number) UnmarshalText(text []byte) error {
	v, count, err := decode(string(text))
	if err != nil {
		return err
	}
	n.Value.Set(v)
	n.MinSyllables = count
	return nil
}

// String returns the koremutake encoding of n. Negative values, which
// cannot be encoded, are reported in the fmt package's %!verb(...) style.
func (n *Number) String() string {
	text, err := n.MarshalText()
	if err != nil {
		return "%!koremutake(" + n.Value.String() + ")"
	}
	return string(text)
}
