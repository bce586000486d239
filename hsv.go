package colorspace

import (
	"math"

	"github.com/gogpu/colorspace/internal/mathx"
)

// RGBToHSV converts c to hue, saturation and value.
//
// Grays short-circuit to {0, 0, v}; hue ties are broken as in RGBToHSL.
func RGBToHSV(c RGB) HSV {
	lo := mathx.Min3(c.R, c.G, c.B)
	hi := mathx.Max3(c.R, c.G, c.B)
	delta := hi - lo

	if delta == 0 {
		return HSV{H: 0, S: 0, V: hi}
	}
	return HSV{
		H: hue(c, hi, delta),
		S: mathx.SafeDiv(delta, hi, 0),
		V: hi,
	}
}

// HSVToRGB converts c back to RGB.
func HSVToRGB(c HSV) RGB {
	if c.S == 0 {
		return RGB{c.V, c.V, c.V}
	}

	h := c.H * 6
	i := math.Floor(h)
	f := h - i
	v := c.V
	p := v * (1 - c.S)
	q := v * (1 - c.S*f)
	t := v * (1 - c.S*(1-f))

	switch mathx.Sector(i) {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default: // 5
		return RGB{v, p, q}
	}
}

// HSV converts c with RGBToHSV.
func (c RGB) HSV() HSV {
	return RGBToHSV(c)
}

// RGB converts c with HSVToRGB.
func (c HSV) RGB() RGB {
	return HSVToRGB(c)
}
