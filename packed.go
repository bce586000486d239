package colorspace

import (
	"github.com/gogpu/colorspace/internal/mathx"
	"github.com/gogpu/colorspace/internal/srgb"
)

// Packed is a 24-bit color integer laid out as 0xRRGGBB.
type Packed uint32

// RGBToPacked rounds each channel of c to an 8-bit value and packs them
// as (r<<16)|(g<<8)|b.
//
// Channels are not clamped; out-of-range values spill into neighbouring
// bits with 32-bit two's-complement semantics. Non-finite channels count
// as 0.
func RGBToPacked(c RGB) Packed {
	r := byteValue(c.R)
	g := byteValue(c.G)
	b := byteValue(c.B)
	//nolint:gosec // G115: deliberate two's-complement reinterpretation
	return Packed(uint32(r<<16 | g<<8 | b))
}

func byteValue(x float64) int32 {
	return int32(mathx.Finite(mathx.RoundHalfUp(x*0xff), 0))
}

// PackedToRGB unpacks the low 24 bits of p.
func PackedToRGB(p Packed) RGB {
	r, g, b := p.Bytes()
	return RGB{
		R: float64(r) / 0xff,
		G: float64(g) / 0xff,
		B: float64(b) / 0xff,
	}
}

// Bytes returns the red, green and blue bytes of p.
func (p Packed) Bytes() (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// RGB converts p with PackedToRGB.
func (p Packed) RGB() RGB {
	return PackedToRGB(p)
}

// Hex formats p as "#rrggbb".
func (p Packed) Hex() Hex {
	return PackedToHex(p)
}

func (p Packed) String() string {
	return string(PackedToHex(p))
}

// RGBA implements the color.Color interface.
func (p Packed) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := p.Bytes()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xffff
}

// Luminance returns the relative luminance of p.
// It equals Luminance(p.RGB()) and uses a lookup table for the transfer
// curve.
func (p Packed) Luminance() float64 {
	return srgb.LuminanceBytes(p.Bytes())
}

// Packed packs c with RGBToPacked.
func (c RGB) Packed() Packed {
	return RGBToPacked(c)
}
