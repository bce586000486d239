package colorspace

import (
	"log/slog"
	"math"

	"github.com/gogpu/colorspace/cache"
)

// Evaluator computes perceptual metrics and memoises the luminance of
// every color it sees. It is useful when the same palette is compared
// repeatedly, e.g. when checking every foreground against every
// background of a theme.
//
// All state is owned by the Evaluator; separate instances share nothing.
// An Evaluator is safe for concurrent use.
type Evaluator struct {
	lum    *cache.ShardedCache[RGB, float64]
	logger *slog.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	o := defaultEvaluatorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = newNopLogger()
	}

	lum := cache.NewSharded[RGB, float64](o.capacity, hashRGB,
		cache.WithTTL(o.ttl),
		cache.WithClock(o.now),
	)
	logger.Debug("colorspace: evaluator created",
		slog.Int("capacity", lum.TotalCapacity()),
		slog.Duration("ttl", lum.TTL()))

	return &Evaluator{lum: lum, logger: logger}
}

func hashRGB(c RGB) uint64 {
	return cache.Float64sHasher(c.R, c.G, c.B)
}

// Luminance returns Luminance(c), computing it at most once per cache
// lifetime of c.
//
// Colors with a NaN channel are never cached because NaN keys never
// compare equal.
func (e *Evaluator) Luminance(c RGB) float64 {
	if math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) {
		return Luminance(c)
	}
	return e.lum.GetOrCreate(c, func() float64 {
		l := Luminance(c)
		e.logger.Debug("colorspace: luminance computed",
			slog.String("color", string(FormatHex(c))),
			slog.Float64("luminance", l))
		return l
	})
}

// ContrastRatio is ContrastRatio with memoised luminances.
func (e *Evaluator) ContrastRatio(a, b RGB) float64 {
	return ratio(e.Luminance(a), e.Luminance(b))
}

// ContrastPercentage is ContrastPercentage with memoised luminances.
func (e *Evaluator) ContrastPercentage(a, b RGB) float64 {
	return percentage(e.Luminance(a), e.Luminance(b))
}

// Check is Check with memoised luminances.
func (e *Evaluator) Check(fg, bg RGB) Report {
	return report(e.Luminance(fg), e.Luminance(bg))
}

// BestText is BestText with a memoised background luminance.
func (e *Evaluator) BestText(bg RGB) RGB {
	return bestText(e.Luminance(bg))
}

// Stats returns the statistics of the luminance cache.
func (e *Evaluator) Stats() cache.Stats {
	return e.lum.Stats()
}

// Reset drops every memoised luminance and zeroes the statistics.
func (e *Evaluator) Reset() {
	e.lum.Clear()
	e.lum.ResetStats()
	e.logger.Debug("colorspace: evaluator reset")
}
