package colorspace

import "github.com/gogpu/colorspace/internal/mathx"

// RGBToCMYK converts c to CMYK using full black generation: k takes the
// largest possible share and c, m, y are re-normalised against it.
// Pure black maps to exactly {0, 0, 0, 1}.
func RGBToCMYK(c RGB) CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{C: 0, M: 0, Y: 0, K: 1}
	}

	cy := 1 - c.R
	mg := 1 - c.G
	ye := 1 - c.B
	k := mathx.Min3(cy, mg, ye)

	return CMYK{
		C: mathx.SafeDiv(cy-k, 1-k, 0),
		M: mathx.SafeDiv(mg-k, 1-k, 0),
		Y: mathx.SafeDiv(ye-k, 1-k, 0),
		K: k,
	}
}

// CMYKToRGB converts c back to RGB.
func CMYKToRGB(c CMYK) RGB {
	return RGB{
		R: (1 - c.C) * (1 - c.K),
		G: (1 - c.M) * (1 - c.K),
		B: (1 - c.Y) * (1 - c.K),
	}
}

// CMYK converts c with RGBToCMYK.
func (c RGB) CMYK() CMYK {
	return RGBToCMYK(c)
}

// RGB converts c with CMYKToRGB.
func (c CMYK) RGB() RGB {
	return CMYKToRGB(c)
}
