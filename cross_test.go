package colorspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHSLToHSV(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		want HSV
	}{
		{"pure", HSL{0.2, 1, 0.5}, HSV{0.2, 1, 1}},
		{"black", HSL{0.2, 1, 0}, HSV{0.2, 0, 0}},
		{"white", HSL{0.2, 0, 1}, HSV{0.2, 0, 1}},
		{"dark", HSL{0.6, 1, 0.25}, HSV{0.6, 1, 0.5}},
		{"light", HSL{0.6, 1, 0.75}, HSV{0.6, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLToHSV(tt.in)
			if d := cmp.Diff(tt.want, got, approx); d != "" {
				t.Errorf("HSLToHSV(%v) mismatch (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

func TestHSVToHSL(t *testing.T) {
	tests := []struct {
		name string
		in   HSV
		want HSL
	}{
		{"pure", HSV{0.2, 1, 1}, HSL{0.2, 1, 0.5}},
		{"black", HSV{0.2, 1, 0}, HSL{0.2, 0, 0}},
		{"white", HSV{0.2, 0, 1}, HSL{0.2, 0, 1}},
		{"dark", HSV{0.6, 1, 0.5}, HSL{0.6, 1, 0.25}},
		{"light", HSV{0.6, 0.5, 1}, HSL{0.6, 1, 0.75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToHSL(tt.in)
			if d := cmp.Diff(tt.want, got, approx); d != "" {
				t.Errorf("HSVToHSL(%v) mismatch (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

// TestCrossConversionsAgreeWithHub checks the direct routes against the
// RGB hub for chromatic colors, where hue is well defined.
func TestCrossConversionsAgreeWithHub(t *testing.T) {
	for _, c := range sampleColors() {
		if isGray(c) {
			continue
		}
		hsl := RGBToHSL(c)
		hsv := RGBToHSV(c)
		hwb := RGBToHWB(c)

		if d := cmp.Diff(hsv, HSLToHSV(hsl), approx); d != "" {
			t.Errorf("HSLToHSV for %v (-hub +direct):\n%s", c, d)
		}
		if d := cmp.Diff(hsl, HSVToHSL(hsv), approx); d != "" {
			t.Errorf("HSVToHSL for %v (-hub +direct):\n%s", c, d)
		}
		if d := diffRGB(c, HWBToRGB(HSLToHWB(hsl))); d != "" {
			t.Errorf("HSLToHWB for %v (-want +got):\n%s", c, d)
		}
		if d := diffRGB(c, HSLToRGB(HWBToHSL(hwb))); d != "" {
			t.Errorf("HWBToHSL for %v (-want +got):\n%s", c, d)
		}
		if d := diffRGB(c, CMYKToRGB(HSLToCMYK(hsl))); d != "" {
			t.Errorf("HSLToCMYK for %v (-want +got):\n%s", c, d)
		}
		if d := cmp.Diff(hsl, CMYKToHSL(RGBToCMYK(c)), approx); d != "" {
			t.Errorf("CMYKToHSL for %v (-want +got):\n%s", c, d)
		}
	}
}

// TestCrossConversionsKeepHue checks that hue passes through untouched,
// even where it carries no information.
func TestCrossConversionsKeepHue(t *testing.T) {
	for _, h := range []float64{0, 0.123, 0.5, 0.999, 1.5, -0.25} {
		if got := HSLToHSV(HSL{h, 0, 0}).H; got != h {
			t.Errorf("HSLToHSV hue %v -> %v", h, got)
		}
		if got := HSVToHSL(HSV{h, 0, 1}).H; got != h {
			t.Errorf("HSVToHSL hue %v -> %v", h, got)
		}
		if got := HSLToHWB(HSL{h, 0.5, 0.5}).H; got != h {
			t.Errorf("HSLToHWB hue %v -> %v", h, got)
		}
		if got := HWBToHSL(HWB{h, 1, 1}).H; got != h {
			t.Errorf("HWBToHSL hue %v -> %v", h, got)
		}
		if got := HSVToHWB(HSV{h, 0.5, 0.5}).H; got != h {
			t.Errorf("HSVToHWB hue %v -> %v", h, got)
		}
		if got := HWBToHSV(HWB{h, 0.5, 1}).H; got != h {
			t.Errorf("HWBToHSV hue %v -> %v", h, got)
		}
	}
}

func TestHexCompositions(t *testing.T) {
	const in = Hex("#3399cc")
	rgb, err := ParseHex(string(in))
	if err != nil {
		t.Fatal(err)
	}

	hsl, err := HexToHSL(in)
	if err != nil || hsl != RGBToHSL(rgb) {
		t.Errorf("HexToHSL = %v, %v", hsl, err)
	}
	hsv, err := HexToHSV(in)
	if err != nil || hsv != RGBToHSV(rgb) {
		t.Errorf("HexToHSV = %v, %v", hsv, err)
	}
	hwb, err := HexToHWB(in)
	if err != nil || hwb != RGBToHWB(rgb) {
		t.Errorf("HexToHWB = %v, %v", hwb, err)
	}
	cmyk, err := HexToCMYK(in)
	if err != nil || cmyk != RGBToCMYK(rgb) {
		t.Errorf("HexToCMYK = %v, %v", cmyk, err)
	}
	packed, err := HexToPacked(in)
	if err != nil || packed != 0x3399cc {
		t.Errorf("HexToPacked = %#x, %v", packed, err)
	}

	for name, got := range map[string]Hex{
		"HSLToHex":    HSLToHex(hsl),
		"HSVToHex":    HSVToHex(hsv),
		"HWBToHex":    HWBToHex(hwb),
		"CMYKToHex":   CMYKToHex(cmyk),
		"PackedToHex": PackedToHex(packed),
	} {
		if got != in {
			t.Errorf("%s = %q, want %q", name, got, in)
		}
	}
}

func TestHexCompositionsPropagateErrors(t *testing.T) {
	const bad = Hex("#12345")
	if _, err := HexToHSL(bad); err == nil {
		t.Error("HexToHSL: expected error")
	}
	if _, err := HexToHSV(bad); err == nil {
		t.Error("HexToHSV: expected error")
	}
	if _, err := HexToHWB(bad); err == nil {
		t.Error("HexToHWB: expected error")
	}
	if _, err := HexToCMYK(bad); err == nil {
		t.Error("HexToCMYK: expected error")
	}
	if _, err := HexToPacked(bad); err == nil {
		t.Error("HexToPacked: expected error")
	}
}

func TestPackedCompositions(t *testing.T) {
	for _, p := range []Packed{0x000000, 0xffffff, 0x3399cc, 0xff8000, 0x123456, 0x808080} {
		if got := HSLToPacked(PackedToHSL(p)); got != p {
			t.Errorf("HSL round trip of %#06x = %#06x", p, got)
		}
		if got := HSVToPacked(PackedToHSV(p)); got != p {
			t.Errorf("HSV round trip of %#06x = %#06x", p, got)
		}
		if got := HWBToPacked(PackedToHWB(p)); got != p {
			t.Errorf("HWB round trip of %#06x = %#06x", p, got)
		}
		if got := CMYKToPacked(PackedToCMYK(p)); got != p {
			t.Errorf("CMYK round trip of %#06x = %#06x", p, got)
		}
	}
}

func TestCrossMethods(t *testing.T) {
	hsl := HSL{0.3, 0.6, 0.4}
	hsv := HSV{0.3, 0.6, 0.4}
	hwb := HWB{0.3, 0.2, 0.4}
	if hsl.HSV() != HSLToHSV(hsl) || hsl.HWB() != HSLToHWB(hsl) {
		t.Error("HSL methods differ from functions")
	}
	if hsv.HSL() != HSVToHSL(hsv) || hsv.HWB() != HSVToHWB(hsv) {
		t.Error("HSV methods differ from functions")
	}
	if hwb.HSL() != HWBToHSL(hwb) || hwb.HSV() != HWBToHSV(hwb) {
		t.Error("HWB methods differ from functions")
	}
}
