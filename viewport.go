package chart

import "math"

// Box is an axis-aligned rectangle.
type Box struct {
	X, Y, W, H float64
}

// MaxY returns the bottom edge of the box.
func (b Box) MaxY() float64 { return b.Y + b.H }

// Viewport maps viewBox coordinates onto a pixel surface.
type Viewport struct {
	ViewBox Box
	OffsetX float64
	OffsetY float64
	ScaleX  float64
	ScaleY  float64
}

// NewViewport fits viewBox into a width x height surface inset by padding
// pixels on every side. With uniform set, both axes share the smaller scale
// and the content is centered, so circles stay circular.
func NewViewport(viewBox Box, width, height int, padding float64, uniform bool) Viewport {
	w := math.Max(float64(width)-2*padding, 1)
	h := math.Max(float64(height)-2*padding, 1)

	sx, sy := 1.0, 1.0
	if viewBox.W > 0 {
		sx = w / viewBox.W
	}
	if viewBox.H > 0 {
		sy = h / viewBox.H
	}

	v := Viewport{ViewBox: viewBox, OffsetX: padding, OffsetY: padding, ScaleX: sx, ScaleY: sy}
	if uniform {
		s := math.Min(sx, sy)
		v.ScaleX, v.ScaleY = s, s
		v.OffsetX += (w - viewBox.W*s) / 2
		v.OffsetY += (h - viewBox.H*s) / 2
	}
	return v
}

// Map converts a viewBox point to pixels.
func (v Viewport) Map(p Point) Point {
	return Point{
		X: v.OffsetX + (p.X-v.ViewBox.X)*v.ScaleX,
		Y: v.OffsetY + (p.Y-v.ViewBox.Y)*v.ScaleY,
	}
}

// MapBox converts a viewBox rectangle to pixels.
func (v Viewport) MapBox(b Box) Box {
	p := v.Map(Pt(b.X, b.Y))
	return Box{X: p.X, Y: p.Y, W: b.W * v.ScaleX, H: b.H * v.ScaleY}
}

// Length scales a viewBox length (such as a radius) to pixels using the
// smaller of the two axis scales.
func (v Viewport) Length(l float64) float64 {
	return l * math.Min(v.ScaleX, v.ScaleY)
}
