package colorspace

import (
	"strconv"
	"strings"

	"github.com/gogpu/colorspace/internal/mathx"
)

// Hex is a color written as '#' followed by 6 hex digits, or 8 when an
// alpha byte is appended. Digits are case-insensitive.
type Hex string

// IsValid reports whether text is '#' followed by exactly 6 hex digits.
func IsValid(text string) bool {
	return validHex(text, false)
}

// IsValidWithAlpha reports whether text is '#' followed by 6 or 8 hex
// digits. It only validates; use ParseARGB to decode text with an alpha
// byte.
func IsValidWithAlpha(text string) bool {
	return validHex(text, true)
}

func validHex(text string, alpha bool) bool {
	if len(text) == 0 || text[0] != '#' {
		return false
	}
	digits := text[1:]
	if len(digits) != 6 && !(alpha && len(digits) == 8) {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// ParseHex parses "#rrggbb" into RGB. Any other shape, including the 8
// digit alpha form, yields a *FormatError.
func ParseHex(text string) (RGB, error) {
	if !IsValid(text) {
		return RGB{}, &FormatError{Input: text}
	}
	digits := text[1:]
	return RGB{
		R: parseHexByte(digits[0:2]) / 0xff,
		G: parseHexByte(digits[2:4]) / 0xff,
		B: parseHexByte(digits[4:6]) / 0xff,
	}, nil
}

// parseHexByte parses a digit pair, falling back to 0 on failure.
func parseHexByte(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(v)
}

// FormatHex writes c as lowercase "#rrggbb".
//
// Channels are scaled by 255 and rounded half-up but not clamped: a value
// outside [0, 1] produces more than two digits or a minus sign for that
// channel. A non-finite channel is written as "00".
func FormatHex(c RGB) Hex {
	var sb strings.Builder
	sb.Grow(7)
	sb.WriteByte('#')
	for _, ch := range [3]float64{c.R, c.G, c.B} {
		n := int64(mathx.Finite(mathx.RoundHalfUp(ch*0xff), 0))
		s := strconv.FormatInt(n, 16)
		if len(s) < 2 {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return Hex(sb.String())
}

// ParseARGB decodes hex text as an ARGB integer, discarding alpha.
//
// The leading '#' is optional and short input is left-padded with zeros
// to 8 digits, so "#ff" is blue. The text is not validated: anything that
// does not parse as a hexadecimal integer decodes to black.
func ParseARGB(text string) RGB {
	digits := strings.TrimPrefix(text, "#")
	if n := len(digits); n < 8 {
		digits = strings.Repeat("0", 8-n) + digits
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Black
	}
	return PackedToRGB(Packed(v & 0xffffff))
}

// Valid reports whether h is a strict 6 digit hex color.
func (h Hex) Valid() bool {
	return IsValid(string(h))
}

// RGB parses h with ParseHex.
func (h Hex) RGB() (RGB, error) {
	return ParseHex(string(h))
}

func (h Hex) String() string {
	return string(h)
}

// RGBA implements the color.Color interface.
// Text that does not parse as ParseHex accepts renders as black.
func (h Hex) RGBA() (r, g, b, a uint32) {
	c, err := ParseHex(string(h))
	if err != nil {
		return Black.RGBA()
	}
	return c.RGBA()
}

// Hex formats c with FormatHex.
func (c RGB) Hex() Hex {
	return FormatHex(c)
}

// HexToRGB is ParseHex under the naming of the other conversions.
func HexToRGB(h Hex) (RGB, error) {
	return ParseHex(string(h))
}

// RGBToHex is FormatHex under the naming of the other conversions.
func RGBToHex(c RGB) Hex {
	return FormatHex(c)
}
