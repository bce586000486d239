package colorspace

import (
	"errors"
	"strconv"
)

// ErrInvalidHex is matched by every *FormatError via errors.Is.
var ErrInvalidHex = errors.New("colorspace: invalid hex color")

// FormatError reports text that is not a strict "#rrggbb" hex color.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return "colorspace: invalid hex color " + strconv.Quote(e.Input) + ": want # followed by 6 hex digits"
}

// Is reports whether target is ErrInvalidHex.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidHex
}
