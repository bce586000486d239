package colorspace

import (
	"image/color"
	"testing"
)

// Verify at compile time that every model implements color.Color.
var (
	_ color.Color = RGB{}
	_ color.Color = HSL{}
	_ color.Color = HSV{}
	_ color.Color = HWB{}
	_ color.Color = CMYK{}
	_ color.Color = Hex("")
	_ color.Color = Packed(0)
)

func TestRGB_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          color.Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"black", Black, 0, 0, 0, 0xffff},
		{"white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"red", Red, 0xffff, 0, 0, 0xffff},
		{"half gray", RGB{0.5, 0.5, 0.5}, 0x8000, 0x8000, 0x8000, 0xffff},
		{"clamped high", RGB{2, 0, 0}, 0xffff, 0, 0, 0xffff},
		{"clamped low", RGB{-1, 0, 0}, 0, 0, 0, 0xffff},
		{"hsl red", HSL{0, 1, 0.5}, 0xffff, 0, 0, 0xffff},
		{"hsv green", HSV{1.0 / 3.0, 1, 1}, 0, 0xffff, 0, 0xffff},
		{"hwb blue", HWB{2.0 / 3.0, 0, 0}, 0, 0, 0xffff, 0xffff},
		{"cmyk yellow", CMYK{0, 0, 1, 0}, 0xffff, 0xffff, 0, 0xffff},
		{"hex magenta", Hex("#ff00ff"), 0xffff, 0, 0xffff, 0xffff},
		{"invalid hex", Hex("nope"), 0, 0, 0, 0xffff},
		{"packed cyan", Packed(0x00ffff), 0, 0xffff, 0xffff, 0xffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"nrgba red", color.NRGBA{R: 255, A: 255}, Red},
		{"rgba white", color.White, White},
		{"premultiplied half red", color.RGBA{R: 128, A: 128}, Red},
		{"transparent", color.Transparent, Black},
		{"gray16", color.Gray16{Y: 0xffff}, White},
		{"rgb passthrough", RGB{0.3, 0.2, 0.1}, RGB{0.3, 0.2, 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.in)
			if d := diffRGB(tt.want, got); d != "" {
				t.Errorf("FromColor(%v) mismatch (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

func TestModels(t *testing.T) {
	in := color.NRGBA{R: 255, G: 255, A: 255}

	if got := RGBModel.Convert(in); got != Yellow {
		t.Errorf("RGBModel.Convert = %v, want %v", got, Yellow)
	}
	hsl, ok := HSLModel.Convert(in).(HSL)
	if !ok || hueDist(hsl.H, 1.0/6.0) > tolerance || hsl.S != 1 || hsl.L != 0.5 {
		t.Errorf("HSLModel.Convert = %#v", HSLModel.Convert(in))
	}
	if _, ok := HSVModel.Convert(in).(HSV); !ok {
		t.Errorf("HSVModel.Convert returned %T", HSVModel.Convert(in))
	}
	if _, ok := HWBModel.Convert(in).(HWB); !ok {
		t.Errorf("HWBModel.Convert returned %T", HWBModel.Convert(in))
	}
	if got := CMYKModel.Convert(in); got != (CMYK{0, 0, 1, 0}) {
		t.Errorf("CMYKModel.Convert = %v, want {0 0 1 0}", got)
	}

	// Values already in the model pass through untouched.
	h := HSL{0.9, 0.1, 0.2}
	if got := HSLModel.Convert(h); got != h {
		t.Errorf("HSLModel.Convert(HSL) = %v, want %v", got, h)
	}
	w := HWB{0.2, 0.3, 0.4}
	if got := HWBModel.Convert(w); got != w {
		t.Errorf("HWBModel.Convert(HWB) = %v, want %v", got, w)
	}
}
