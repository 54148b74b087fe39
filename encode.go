package koremutake

import (
	"fmt"
	"math/big"
	"slices"
)

// maxSyllableLen is the longest syllable in the table ("tre", "bra", ...).
const maxSyllableLen = 3

// SyllableCount returns the number of syllables Encode produces for n without
// padding: one per started group of 7 bits, and at least one.
// It returns 0 for nil or negative n.
func SyllableCount(n *big.Int) int {
	if n == nil || n.Sign() < 0 {
		return 0
	}
	return max(1, (n.BitLen()+BitsPerSyllable-1)/BitsPerSyllable)
}

// Encode converts a non-negative integer to its koremutake string.
// It returns an error wrapping ErrInvalidArgument if n is nil or negative.
func Encode(n *big.Int) (string, error) {
	return EncodePadded(n, 0)
}

// EncodePadded is like Encode but left-pads the result with zero syllables
// ("ba") until it is at least minSyllables long. Padding never truncates.
func EncodePadded(n *big.Int, minSyllables int) (string, error) {
	buf, err := AppendEncode(nil, n, minSyllables)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendEncode appends the padded koremutake encoding of n to dst and returns
// the extended buffer. dst can be nil. On error dst is returned unchanged.
// n is never modified.
func AppendEncode(dst []byte, n *big.Int, minSyllables int) ([]byte, error) {
	if n == nil {
		return dst, fmt.Errorf("%w: nil value", ErrInvalidArgument)
	}
	if n.Sign() < 0 {
		return dst, fmt.Errorf("%w: negative value %s", ErrInvalidArgument, n)
	}

	count := SyllableCount(n)
	dst = slices.Grow(dst, max(count, minSyllables)*maxSyllableLen)
	dst = appendPadding(dst, minSyllables-count)

	// Most significant digit first; bits above BitLen read as zero.
	for pos := count - 1; pos >= 0; pos-- {
		var (
			digit uint
			base  = pos * BitsPerSyllable
		)
		for bit := BitsPerSyllable - 1; bit >= 0; bit-- {
			digit = digit<<1 | n.Bit(base+bit)
		}
		dst = append(dst, std.syllables[digit]...)
	}
	return dst, nil
}

// EncodeUint64 is the allocation-light form of EncodePadded for values that
// fit in a uint64. Both produce identical output.
func EncodeUint64(v uint64, minSyllables int) string {
	var digits [maxUint64Syllables]uint8
	i := len(digits)
	for {
		i--
		digits[i] = uint8(v & digitMask)
		v >>= BitsPerSyllable
		if v == 0 {
			break
		}
	}

	count := len(digits) - i
	buf := make([]byte, 0, max(count, minSyllables)*maxSyllableLen)
	buf = appendPadding(buf, minSyllables-count)
	for _, d := range digits[i:] {
		buf = append(buf, std.syllables[d]...)
	}
	return string(buf)
}

// appendPadding appends k zero syllables. Non-positive k appends nothing.
func appendPadding(dst []byte, k int) []byte {
	for ; k > 0; k-- {
		dst = append(dst, std.syllables[0]...)
	}
	return dst
}
