package koremutake

// Core constants for the koremutake syllable table
const (
	NumSyllables    = 128 // Table size; one syllable per 7-bit digit
	BitsPerSyllable = 7   // log2(NumSyllables)

	digitMask = NumSyllables - 1 // 0x7F

	// maxUint64Syllables is the most significant syllables a uint64 can need:
	// ceil(64/7) = 10, the first one carrying only a single bit.
	maxUint64Syllables = (64 + BitsPerSyllable - 1) / BitsPerSyllable

	vowels = "aeiouy"
)

// consonantUnits is the ordered list of syllable onsets. Together with vowels
// it yields 22*6 = 132 combinations, of which the first 128 form the table.
var consonantUnits = [...]string{
	"b", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "r", "s", "t", "v",
	"br", "dr", "fr", "gr", "pr", "st", "tr",
}

// isVowel reports whether c terminates a syllable.
func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// table holds the forward syllable array and its reverse index.
// It is built once during package initialization and never mutated.
type table struct {
	syllables [NumSyllables]string // digit -> syllable
	index     map[string]uint8     // syllable -> digit
}

var std = newTable()

// newTable builds the syllable table by walking consonant units (outer) and
// vowels (inner), stopping after NumSyllables entries.
func newTable() *table {
	t := &table{index: make(map[string]uint8, NumSyllables)}
	n := 0
	for _, c := range consonantUnits {
		for i := 0; i < len(vowels) && n < NumSyllables; i++ {
			s := c + vowels[i:i+1]
			t.syllables[n] = s
			t.index[s] = uint8(n)
			n++
		}
	}
	return t
}

// Syllable returns the syllable for digit d. It panics if d is not in [0, 127].
func Syllable(d int) string {
	return std.syllables[d]
}

// Index returns the digit represented by syllable s.
func Index(s string) (int, bool) {
	d, ok := std.index[s]
	return int(d), ok
}
