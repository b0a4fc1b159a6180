package chart

import "math"

// Point represents a 2D point in viewBox or pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Polar returns the point at angle deg (degrees, clockwise from +X) on the
// circle of radius r around center.
func Polar(center Point, r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// DataPoint is a single input datum. Labels need not be unique and values
// may be zero or negative.
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color Color   `json:"color,omitempty"`
}

// NormalizedPoint is a DataPoint whose Color is always set.
// Index is the position of the point in the caller's input.
type NormalizedPoint struct {
	Label string
	Value float64
	Color Color
	Index int
}

// DataPoint converts the normalized point back to its input form.
func (p NormalizedPoint) DataPoint() DataPoint {
	return DataPoint{Label: p.Label, Value: p.Value, Color: p.Color}
}
