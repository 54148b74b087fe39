package koremutake

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidArgument indicates a value that cannot be encoded, such as a negative number.
	ErrInvalidArgument = errors.New("koremutake: invalid argument")

	// ErrFormat indicates a string that is not a sequence of table syllables.
	ErrFormat = errors.New("koremutake: not a valid koremutake string")

	// ErrOverflow indicates a decoded value that does not fit the requested integer type.
	ErrOverflow = errors.New("koremutake: value overflows uint64")
)

// FormatError describes where decoding of a koremutake string failed.
// errors.Is(err, ErrFormat) reports true for every *FormatError.
type FormatError struct {
	Input  string // the full input passed to the decoder
	Text   string // the unrecognized syllable or trailing fragment
	Offset int    // byte offset of Text within Input
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(ErrFormat.Error())
	b.WriteString(": ")
	b.WriteString(strconv.Quote(e.Input))
	switch {
	case e.Input == "":
		b.WriteString(" (empty)")
	case e.Text != "":
		b.WriteString(" (")
		b.WriteString(strconv.Quote(e.Text))
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteByte(')')
	}
	return b.String()
}

// Is matches ErrFormat so callers can test the error kind without a type assertion.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
