package chart

import "math"

// Normalize assigns a color to every point that omits one.
//
// The output has the same length and order as points. A point keeps its own
// color if set; otherwise it gets palette.At(i) where i is its index in the
// input, not a count of uncolored points. The same dataset therefore always
// yields the same colors, and normalizing an already normalized list is a
// no-op.
func Normalize(points []DataPoint, palette Palette) []NormalizedPoint {
	out := make([]NormalizedPoint, len(points))
	for i, p := range points {
		c := p.Color
		if c.IsZero() {
			c = palette.At(i)
		}
		out[i] = NormalizedPoint{
			Label: p.Label,
			Value: p.Value,
			Color: c,
			Index: i,
		}
	}
	return out
}

// Validate reports the first point whose value is NaN or infinite.
// Such values cannot come from normal data variation and are rejected
// rather than coerced.
func Validate(points []DataPoint) error {
	for i, p := range points {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return &InvalidValueError{Index: i, Label: p.Label, Value: p.Value}
		}
	}
	return nil
}

// maxValue returns the largest value in points, or floor if every value is
// below it.
func maxValue(points []NormalizedPoint, floor float64) float64 {
	m := floor
	for _, p := range points {
		if p.Value > m {
			m = p.Value
		}
	}
	return m
}
