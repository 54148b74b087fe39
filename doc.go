// Package koremutake converts integers to and from pronounceable syllable strings.
//
// # Overview
//
// Koremutake is a way to write binary data as a sequence of short, easy to
// say syllables. A value is split into base-128 digits and every digit is
// replaced by one syllable from a fixed 128-entry table:
//
//	0 -> "ba", 1 -> "be", ... 127 -> "tre"
//
// Digits are written most significant first with no separator, so
// 10610353957 becomes "koremutake" (ko re mu ta ke).
//
// # The Syllable Table
//
// Each syllable is a consonant unit followed by a single vowel. The consonant
// units are
//
//	b d f g h j k l m n p r s t v br dr fr gr pr st tr
//
// and the vowels are "aeiouy". The table is the first 128 entries of the
// cross product, consonant units outermost. Since every syllable ends in
// exactly one vowel and vowels appear nowhere else, a string splits into
// syllables unambiguously by cutting after each vowel.
//
// # Basic Usage
//
//	s, _ := koremutake.Encode(big.NewInt(10610353957)) // "koremutake"
//	n, _ := koremutake.Decode("koremutake")            // 10610353957
//
//	// Fixed-width identifiers: pad with zero syllables
//	id := koremutake.EncodeUint64(42, 4) // "bababala"
//
// Values have no upper bound; Encode and Decode use math/big. EncodeUint64
// and DecodeUint64 cover the common case without big-integer allocation.
//
// # Errors
//
// Encoding a negative value fails with ErrInvalidArgument. Decoding fails
// with a *FormatError (matching ErrFormat) when the input contains an
// unknown syllable, ends in the middle of a syllable, or is empty.
//
// All functions are safe for concurrent use; the syllable table is built
// once at package initialization and never modified.
package koremutake
