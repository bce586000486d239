package srgb

// expandLUT maps an 8-bit channel directly to linear light.
// 256 entries, 2KB. Entry i equals Expand(float64(i)/255) bit for bit,
// so table and formula can be mixed freely.
var expandLUT [256]float64

func init() {
	for i := range expandLUT {
		expandLUT[i] = Expand(float64(i) / 255.0)
	}
}

// ExpandByte converts an 8-bit gamma-encoded channel to linear light using
// the lookup table.
//
// Example:
//
//	v := ExpandByte(128) // ~0.2159 (not 0.5!)
func ExpandByte(c uint8) float64 {
	return expandLUT[c]
}

// ExpandByteSlow is the math.Pow reference for ExpandByte.
// Used for testing and verification only.
func ExpandByteSlow(c uint8) float64 {
	return Expand(float64(c) / 255.0)
}

// LuminanceBytes returns the relative luminance of an 8-bit color using
// the lookup table.
func LuminanceBytes(r, g, b uint8) float64 {
	return WeightR*expandLUT[r] + WeightG*expandLUT[g] + WeightB*expandLUT[b]
}
