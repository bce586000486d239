package colorspace

import (
	"math"

	"github.com/gogpu/colorspace/internal/mathx"
)

// RGBToHWB converts c to hue, whiteness and blackness.
//
// Whiteness is the smallest channel and blackness is one minus the
// largest. Grays short-circuit to {0, w, b}. Hue is measured from the
// channel holding the minimum, checked in the order red, green, blue.
func RGBToHWB(c RGB) HWB {
	w := mathx.Min3(c.R, c.G, c.B)
	v := mathx.Max3(c.R, c.G, c.B)
	b := 1 - v
	if v == w {
		return HWB{H: 0, W: w, B: b}
	}

	var f, i float64
	switch w {
	case c.R:
		f, i = c.G-c.B, 3
	case c.G:
		f, i = c.B-c.R, 5
	default:
		f, i = c.R-c.G, 1
	}
	h := (i - mathx.SafeDiv(f, v-w, 0)) / 6
	return HWB{H: h, W: w, B: b}
}

// HWBToRGB converts c back to RGB.
//
// The hue wheel is mirrored in every odd sector, which lets a single
// interpolated channel n serve all six sectors. The sector index is reduced
// modulo 6, so a hue of exactly 1 (as produced for pure red) lands in
// sector 0.
func HWBToRGB(c HWB) RGB {
	h := c.H * 6
	w := c.W
	v := 1 - c.B
	i := math.Floor(h)
	f := h - i
	sector := mathx.Sector(i)
	if sector%2 == 1 {
		f = 1 - f
	}
	n := w + f*(v-w)

	switch sector {
	case 0:
		return RGB{v, n, w}
	case 1:
		return RGB{n, v, w}
	case 2:
		return RGB{w, v, n}
	case 3:
		return RGB{w, n, v}
	case 4:
		return RGB{n, w, v}
	default: // 5
		return RGB{v, w, n}
	}
}

// HSVToHWB converts c directly, keeping hue.
func HSVToHWB(c HSV) HWB {
	return HWB{
		H: c.H,
		W: (1 - c.S) * c.V,
		B: 1 - c.V,
	}
}

// HWBToHSV converts c directly, keeping hue. When blackness is 1 the
// saturation falls back to 0.
func HWBToHSV(c HWB) HSV {
	return HSV{
		H: c.H,
		S: 1 - mathx.SafeDiv(c.W, 1-c.B, 1),
		V: 1 - c.B,
	}
}

// HWB converts c with RGBToHWB.
func (c RGB) HWB() HWB {
	return RGBToHWB(c)
}

// RGB converts c with HWBToRGB.
func (c HWB) RGB() RGB {
	return HWBToRGB(c)
}
