package colorspace

import (
	"fmt"
	"math"

	"github.com/gogpu/colorspace/internal/mathx"
	"github.com/gogpu/colorspace/internal/srgb"
)

// Luminance returns the WCAG relative luminance of c: the weighted sum of
// its gamma-expanded channels. The result is in [0, 1] for in-range input.
func Luminance(c RGB) float64 {
	return srgb.Luminance(c.R, c.G, c.B)
}

// ContrastRatio returns the WCAG contrast ratio between a and b.
// It is symmetric and ranges from 1 (identical luminance) to 21 (black on
// white).
func ContrastRatio(a, b RGB) float64 {
	return ratio(Luminance(a), Luminance(b))
}

func ratio(la, lb float64) float64 {
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// ContrastPercentage returns the distance between a and b in CIE
// lightness, from 0 (no contrast) to about 100 (black on white).
func ContrastPercentage(a, b RGB) float64 {
	return percentage(Luminance(a), Luminance(b))
}

func percentage(la, lb float64) float64 {
	return math.Abs(srgb.LStar(la) - srgb.LStar(lb))
}

// SafeDiv returns num/den, or fallback when the quotient would be NaN or
// infinite.
func SafeDiv(num, den, fallback float64) float64 {
	return mathx.SafeDiv(num, den, fallback)
}

// Level is a WCAG 2.x conformance level for text contrast.
type Level uint8

const (
	// LevelFail means the ratio is below 3:1.
	LevelFail Level = iota
	// LevelAALarge passes AA for large text only (3:1).
	LevelAALarge
	// LevelAA passes AA for normal text and AAA for large text (4.5:1).
	LevelAA
	// LevelAAA passes AAA for normal text (7:1).
	LevelAAA
)

// WCAG minimum contrast ratios.
const (
	MinRatioAALarge = 3.0
	MinRatioAA      = 4.5
	MinRatioAAA     = 7.0
)

// Grade returns the highest level a contrast ratio satisfies.
func Grade(ratio float64) Level {
	switch {
	case ratio >= MinRatioAAA:
		return LevelAAA
	case ratio >= MinRatioAA:
		return LevelAA
	case ratio >= MinRatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelFail:
		return "fail"
	case LevelAALarge:
		return "AA-large"
	case LevelAA:
		return "AA"
	case LevelAAA:
		return "AAA"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	for c := LevelFail; c <= LevelAAA; c++ {
		if c.String() == string(text) {
			*l = c
			return nil
		}
	}
	return fmt.Errorf("colorspace: unknown contrast level %q", text)
}

// Report summarizes the contrast between a foreground and a background.
type Report struct {
	Ratio      float64 `json:"ratio" yaml:"ratio"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Level      Level   `json:"level" yaml:"level"`
}

// Check computes the contrast report for fg on bg.
func Check(fg, bg RGB) Report {
	return report(Luminance(fg), Luminance(bg))
}

func report(lf, lb float64) Report {
	r := ratio(lf, lb)
	return Report{
		Ratio:      r,
		Percentage: percentage(lf, lb),
		Level:      Grade(r),
	}
}

// BestText returns black or white, whichever contrasts more with bg.
// Black wins ties.
func BestText(bg RGB) RGB {
	return bestText(Luminance(bg))
}

func bestText(lb float64) RGB {
	if ratio(Luminance(Black), lb) >= ratio(Luminance(White), lb) {
		return Black
	}
	return White
}
