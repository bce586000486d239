// Package colorspace converts colors between RGB, HSL, HSV, HWB, CMYK,
// hexadecimal text and packed 24-bit integers, and computes the WCAG
// perceptual metrics (relative luminance, contrast ratio) on top of them.
//
// # Overview
//
// RGB is the hub representation. Every model converts to and from RGB, and
// every other pair is composed through it, except HSV<->HWB and HSL<->HSV
// which use direct closed forms:
//
//	hsl := colorspace.RGBToHSL(colorspace.RGB{R: 1, G: 0.5, B: 0})
//	hex := colorspace.HSLToHex(hsl)             // "#ff8000"
//	rgb, err := colorspace.ParseHex("#0000FF")  // {0 0 1}, nil
//	ratio := colorspace.ContrastRatio(colorspace.Black, colorspace.White) // 21
//
// # Channel ranges
//
// All channels, including hue, are expressed in [0, 1]. Inputs are never
// clamped or validated: out-of-range values propagate through the
// arithmetic. Callers that need strict ranges must clamp before converting.
// The only clamping happens at the bridge to [image/color], whose integer
// channels cannot represent anything else.
//
// # Degenerate colors
//
// Hue is undefined for grays (including black and white) and is reported
// as 0. Round trips through such colors reproduce the RGB value but not an
// arbitrary input hue. Divisions that could still produce NaN or Inf are
// guarded by [SafeDiv], which substitutes a fallback value.
//
// # Concurrency
//
// All conversions are pure functions on value types and may be called from
// any goroutine. [Evaluator] is safe for concurrent use as well.
package colorspace

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
