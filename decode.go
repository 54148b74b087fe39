package koremutake

import (
	"fmt"
	"math/big"
)

// syllablesPerWord is how many 7-bit digits fit in a uint64 accumulator
// before they are flushed into the big.Int result.
const syllablesPerWord = 64 / BitsPerSyllable // 9 digits = 63 bits

// scan splits s after every vowel, looks each piece up in the reverse index
// and calls fn with the digit, left to right. The whole of s must be
// consumed: an unknown syllable, a trailing fragment without a vowel, or an
// empty input all yield a *FormatError.
func scan(s string, fn func(digit uint8)) error {
	if s == "" {
		return &FormatError{Input: s}
	}
	start := 0
	for i := 0; i < len(s); i++ {
		if !isVowel(s[i]) {
			continue
		}
		d, ok := std.index[s[start:i+1]]
		if !ok {
			return &FormatError{Input: s, Text: s[start : i+1], Offset: start}
		}
		fn(d)
		start = i + 1
	}
	if start != len(s) {
		return &FormatError{Input: s, Text: s[start:], Offset: start}
	}
	return nil
}

// Decode converts a koremutake string to the integer it represents.
// Leading zero syllables ("ba") do not change the result.
// Malformed input yields a *FormatError matching ErrFormat.
func Decode(s string) (*big.Int, error) {
	n, _, err := decode(s)
	return n, err
}

// decode returns the value and the number of syllables in s.
func decode(s string) (*big.Int, int, error) {
	var (
		n     = new(big.Int)
		tmp   big.Int
		word  uint64 // pending digits not yet folded into n
		words int    // number of digits in word
		total int
	)
	flush := func() {
		n.Lsh(n, uint(words*BitsPerSyllable))
		n.Add(n, tmp.SetUint64(word))
		word, words = 0, 0
	}

	err := scan(s, func(d uint8) {
		word = word<<BitsPerSyllable | uint64(d)
		words++
		total++
		if words == syllablesPerWord {
			flush()
		}
	})
	if err != nil {
		return nil, 0, err
	}
	flush()
	return n, total, nil
}

// DecodeUint64 is like Decode but returns a uint64. It returns an error
// wrapping ErrOverflow if the value exceeds math.MaxUint64. Format errors
// take precedence over overflow.
func DecodeUint64(s string) (uint64, error) {
	var (
		v        uint64
		overflow bool
	)
	err := scan(s, func(d uint8) {
		if v>>(64-BitsPerSyllable) != 0 {
			overflow = true
		}
		v = v<<BitsPerSyllable | uint64(d)
	})
	if err != nil {
		return 0, err
	}
	if overflow {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return v, nil
}

// Split returns the syllables of s in order, validating s the same way Decode does.
func Split(s string) ([]string, error) {
	var out []string
	err := scan(s, func(d uint8) {
		out = append(out, std.syllables[d])
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Valid reports whether s is a well-formed koremutake string.
func Valid(s string) bool {
	return scan(s, func(uint8) {}) == nil
}
