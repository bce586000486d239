package colorspace

import "math"

// Conversions between the hue-based models keep the hue of the source
// value as-is; it is never recomputed from RGB.

// HSLToHSV converts c directly, keeping hue.
func HSLToHSV(c HSL) HSV {
	v := c.L + c.S*math.Min(c.L, 1-c.L)
	var s float64
	if v != 0 {
		s = 2 * (1 - c.L/v)
	}
	return HSV{H: c.H, S: s, V: v}
}

// HSVToHSL converts c directly, keeping hue.
func HSVToHSL(c HSV) HSL {
	l := c.V * (1 - c.S/2)
	var s float64
	if l != 0 && l != 1 {
		s = (c.V - l) / math.Min(l, 1-l)
	}
	return HSL{H: c.H, S: s, L: l}
}

// HSLToHWB converts c through HSV, keeping hue.
func HSLToHWB(c HSL) HWB {
	hwb := HSVToHWB(HSLToHSV(c))
	hwb.H = c.H
	return hwb
}

// HWBToHSL converts c through HSV, keeping hue.
func HWBToHSL(c HWB) HSL {
	hsl := HSVToHSL(HWBToHSV(c))
	hsl.H = c.H
	return hsl
}

// HSLToCMYK converts c through RGB.
func HSLToCMYK(c HSL) CMYK { return RGBToCMYK(HSLToRGB(c)) }

// CMYKToHSL converts c through RGB.
func CMYKToHSL(c CMYK) HSL { return RGBToHSL(CMYKToRGB(c)) }

// HSV converts c with HSLToHSV.
func (c HSL) HSV() HSV { return HSLToHSV(c) }

// HWB converts c with HSLToHWB.
func (c HSL) HWB() HWB { return HSLToHWB(c) }

// HSL converts c with HSVToHSL.
func (c HSV) HSL() HSL { return HSVToHSL(c) }

// HWB converts c with HSVToHWB.
func (c HSV) HWB() HWB { return HSVToHWB(c) }

// HSL converts c with HWBToHSL.
func (c HWB) HSL() HSL { return HWBToHSL(c) }

// HSV converts c with HWBToHSV.
func (c HWB) HSV() HSV { return HWBToHSV(c) }

// Hex text goes through RGB; only the parsing direction can fail.

// HexToHSL parses h and converts the result to HSL.
func HexToHSL(h Hex) (HSL, error) {
	c, err := ParseHex(string(h))
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c), nil
}

// HexToHSV parses h and converts the result to HSV.
func HexToHSV(h Hex) (HSV, error) {
	c, err := ParseHex(string(h))
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(c), nil
}

// HexToHWB parses h and converts the result to HWB.
func HexToHWB(h Hex) (HWB, error) {
	c, err := ParseHex(string(h))
	if err != nil {
		return HWB{}, err
	}
	return RGBToHWB(c), nil
}

// HexToCMYK parses h and converts the result to CMYK.
func HexToCMYK(h Hex) (CMYK, error) {
	c, err := ParseHex(string(h))
	if err != nil {
		return CMYK{}, err
	}
	return RGBToCMYK(c), nil
}

// HexToPacked parses h and packs the result.
func HexToPacked(h Hex) (Packed, error) {
	c, err := ParseHex(string(h))
	if err != nil {
		return 0, err
	}
	return RGBToPacked(c), nil
}

// HSLToHex formats c through RGB.
func HSLToHex(c HSL) Hex { return FormatHex(HSLToRGB(c)) }

// HSVToHex formats c through RGB.
func HSVToHex(c HSV) Hex { return FormatHex(HSVToRGB(c)) }

// HWBToHex formats c through RGB.
func HWBToHex(c HWB) Hex { return FormatHex(HWBToRGB(c)) }

// CMYKToHex formats c through RGB.
func CMYKToHex(c CMYK) Hex { return FormatHex(CMYKToRGB(c)) }

// PackedToHex formats p through RGB.
func PackedToHex(p Packed) Hex { return FormatHex(PackedToRGB(p)) }

// Packed integers go through RGB as well.

// HSLToPacked packs c through RGB.
func HSLToPacked(c HSL) Packed { return RGBToPacked(HSLToRGB(c)) }

// PackedToHSL unpacks p and converts the result to HSL.
func PackedToHSL(p Packed) HSL { return RGBToHSL(PackedToRGB(p)) }

// HSVToPacked packs c through RGB.
func HSVToPacked(c HSV) Packed { return RGBToPacked(HSVToRGB(c)) }

// PackedToHSV unpacks p and converts the result to HSV.
func PackedToHSV(p Packed) HSV { return RGBToHSV(PackedToRGB(p)) }

// HWBToPacked packs c through RGB.
func HWBToPacked(c HWB) Packed { return RGBToPacked(HWBToRGB(c)) }

// PackedToHWB unpacks p and converts the result to HWB.
func PackedToHWB(p Packed) HWB { return RGBToHWB(PackedToRGB(p)) }

// CMYKToPacked packs c through RGB.
func CMYKToPacked(c CMYK) Packed { return RGBToPacked(CMYKToRGB(c)) }

// PackedToCMYK unpacks p and converts the result to CMYK.
func PackedToCMYK(p Packed) CMYK { return RGBToCMYK(PackedToRGB(p)) }
