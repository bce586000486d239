package colorspace

import (
	"math"
	"math/rand"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// tolerance for round trips on well-formed input.
const tolerance = 1e-9

var approx = cmpopts.EquateApprox(0, tolerance)

// diffRGB reports a difference between two RGB values beyond tolerance.
func diffRGB(want, got RGB) string {
	return cmp.Diff(want, got, approx)
}

// sampleColors returns a 7x7x7 channel grid plus pseudo-random colors.
func sampleColors() []RGB {
	levels := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}
	var out []RGB
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				out = append(out, RGB{r, g, b})
			}
		}
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		out = append(out, RGB{rng.Float64(), rng.Float64(), rng.Float64()})
	}
	return out
}

// grays returns achromatic colors from black to white.
func grays() []RGB {
	var out []RGB
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		out = append(out, RGB{x, x, x})
	}
	return out
}

func isGray(c RGB) bool {
	return c.R == c.G && c.G == c.B
}

// hueDist is the distance between two hues on the unit circle.
func hueDist(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func hasNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
