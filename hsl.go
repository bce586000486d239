package colorspace

import "github.com/gogpu/colorspace/internal/mathx"

// RGBToHSL converts c to hue, saturation and lightness.
//
// Grays (max == min) short-circuit to {0, 0, l}. When two channels tie for
// the maximum, hue is taken from the first of red, green, blue.
func RGBToHSL(c RGB) HSL {
	lo := mathx.Min3(c.R, c.G, c.B)
	hi := mathx.Max3(c.R, c.G, c.B)
	delta := hi - lo

	l := (hi + lo) / 2
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = mathx.SafeDiv(delta, hi+lo, 0)
	} else {
		s = mathx.SafeDiv(delta, 2-hi-lo, 0)
	}
	return HSL{H: hue(c, hi, delta), S: s, L: l}
}

// hue computes the hue shared by HSL and HSV from the channel maximum and
// the (non-zero) chroma.
func hue(c RGB, hi, delta float64) float64 {
	dr := ((hi-c.R)/6 + delta/2) / delta
	dg := ((hi-c.G)/6 + delta/2) / delta
	db := ((hi-c.B)/6 + delta/2) / delta

	var h float64
	switch hi {
	case c.R:
		h = db - dg
	case c.G:
		h = 1.0/3.0 + dr - db
	case c.B:
		h = 2.0/3.0 + dg - dr
	}
	return wrapUnit(h)
}

// wrapUnit moves h into [0, 1] by adding or subtracting one turn once.
func wrapUnit(h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	return h
}

// HSLToRGB converts c back to RGB.
func HSLToRGB(c HSL) RGB {
	var m2 float64
	if c.L <= 0.5 {
		m2 = c.L * (1 + c.S)
	} else {
		m2 = c.L + c.S - c.S*c.L
	}
	m1 := 2*c.L - m2
	return RGB{
		R: hueToChannel(m1, m2, c.H+1.0/3.0),
		G: hueToChannel(m1, m2, c.H),
		B: hueToChannel(m1, m2, c.H-1.0/3.0),
	}
}

// hueToChannel evaluates the piecewise-linear channel ramp between m1 and
// m2 at hue offset h.
func hueToChannel(m1, m2, h float64) float64 {
	h = wrapUnit(h)
	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*6*h
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2.0/3.0-h)*6
	default:
		return m1
	}
}

// HSL converts c with RGBToHSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(c)
}

// RGB converts c with HSLToRGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(c)
}
