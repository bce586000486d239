package colorspace

import (
	"image/color"
	"math"
)

// RGB represents a color with red, green and blue components.
// Each component is conventionally in the range [0, 1].
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// HSL represents a color as hue, saturation and lightness.
// Each component, hue included, is conventionally in the range [0, 1].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// HSV represents a color as hue, saturation and value.
// Each component, hue included, is conventionally in the range [0, 1].
type HSV struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	V float64 `json:"v" yaml:"v"`
}

// HWB represents a color as hue, whiteness and blackness.
// Each component, hue included, is conventionally in the range [0, 1].
type HWB struct {
	H float64 `json:"h" yaml:"h"`
	W float64 `json:"w" yaml:"w"`
	B float64 `json:"b" yaml:"b"`
}

// CMYK represents a color as cyan, magenta, yellow and key (black) ink.
// Each component is conventionally in the range [0, 1].
type CMYK struct {
	C float64 `json:"c" yaml:"c"`
	M float64 `json:"m" yaml:"m"`
	Y float64 `json:"y" yaml:"y"`
	K float64 `json:"k" yaml:"k"`
}

// Common colors
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{1, 1, 1}
	Red     = RGB{1, 0, 0}
	Green   = RGB{0, 1, 0}
	Blue    = RGB{0, 0, 1}
	Yellow  = RGB{1, 1, 0}
	Cyan    = RGB{0, 1, 1}
	Magenta = RGB{1, 0, 1}
)

// RGBA implements the color.Color interface.
// Channels are clamped to [0, 1]; the result is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return channel16(c.R), channel16(c.G), channel16(c.B), 0xffff
}

// RGBA implements the color.Color interface.
func (c HSL) RGBA() (r, g, b, a uint32) { return HSLToRGB(c).RGBA() }

// RGBA implements the color.Color interface.
func (c HSV) RGBA() (r, g, b, a uint32) { return HSVToRGB(c).RGBA() }

// RGBA implements the color.Color interface.
func (c HWB) RGBA() (r, g, b, a uint32) { return HWBToRGB(c).RGBA() }

// RGBA implements the color.Color interface.
func (c CMYK) RGBA() (r, g, b, a uint32) { return CMYKToRGB(c).RGBA() }

// FromColor converts a standard color.Color to RGB.
// The alpha channel is discarded after un-premultiplying; a fully
// transparent color converts to black.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	if n.A == 0 {
		return Black
	}
	return RGB{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
	}
}

// Models for the standard library's image/color package.
var (
	RGBModel  = color.ModelFunc(rgbModel)
	HSLModel  = color.ModelFunc(hslModel)
	HSVModel  = color.ModelFunc(hsvModel)
	HWBModel  = color.ModelFunc(hwbModel)
	CMYKModel = color.ModelFunc(cmykModel)
)

func rgbModel(c color.Color) color.Color {
	return FromColor(c)
}

func hslModel(c color.Color) color.Color {
	if _, ok := c.(HSL); ok {
		return c
	}
	return RGBToHSL(FromColor(c))
}

func hsvModel(c color.Color) color.Color {
	if _, ok := c.(HSV); ok {
		return c
	}
	return RGBToHSV(FromColor(c))
}

func hwbModel(c color.Color) color.Color {
	if _, ok := c.(HWB); ok {
		return c
	}
	return RGBToHWB(FromColor(c))
}

func cmykModel(c color.Color) color.Color {
	if _, ok := c.(CMYK); ok {
		return c
	}
	return RGBToCMYK(FromColor(c))
}

// channel16 maps a [0, 1] channel to [0, 0xffff], clamping out-of-range
// and non-finite values.
func channel16(x float64) uint32 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 1 {
		return 0xffff
	}
	return uint32(x*0xffff + 0.5)
}
