package chart

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a clockwise circular arc from the current point to Point.
// Center, StartAngle and EndAngle (degrees) describe the same arc for
// backends that cannot consume SVG arc flags.
type ArcTo struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	LargeArc   bool
	Point      Point
}

func (ArcTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a vector path in viewBox coordinates.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Arc draws a clockwise arc of radius r around center from startDeg to
// endDeg. The current point must already be on the arc at startDeg.
func (p *Path) Arc(center Point, r, startDeg, endDeg float64) {
	end := Polar(center, r, endDeg)
	p.elements = append(p.elements, ArcTo{
		Center:     center,
		Radius:     r,
		StartAngle: startDeg,
		EndAngle:   endDeg,
		LargeArc:   endDeg-startDeg > 180,
		Point:      end,
	})
	p.current = end
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of the path with every point mapped by v.
// Arc radii are scaled by v's uniform length factor.
func (p *Path) Transform(v Viewport) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := v.Map(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := v.Map(e.Point)
			result.LineTo(pt.X, pt.Y)
		case ArcTo:
			e.Center = v.Map(e.Center)
			e.Point = v.Map(e.Point)
			e.Radius = v.Length(e.Radius)
			result.elements = append(result.elements, e)
			result.current = e.Point
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: v.Map(e.Control1),
				Control2: v.Map(e.Control2),
				Point:    v.Map(e.Point),
			})
			result.current = v.Map(e.Point)
		case Close:
			result.Close()
		}
	}
	return result
}

// String returns the path in SVG path data syntax, e.g. "M 0 100 L 50 20 Z".
func (p *Path) String() string {
	var sb strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			sb.WriteString("M ")
			writePoint(&sb, e.Point)
		case LineTo:
			sb.WriteString("L ")
			writePoint(&sb, e.Point)
		case ArcTo:
			r := formatCoord(e.Radius)
			large := "0"
			if e.LargeArc {
				large = "1"
			}
			sb.WriteString("A " + r + " " + r + " 0 " + large + " 1 ")
			writePoint(&sb, e.Point)
		case CubicTo:
			sb.WriteString("C ")
			writePoint(&sb, e.Control1)
			sb.WriteByte(' ')
			writePoint(&sb, e.Control2)
			sb.WriteByte(' ')
			writePoint(&sb, e.Point)
		case Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, pt Point) {
	sb.WriteString(formatCoord(pt.X))
	sb.WriteByte(' ')
	sb.WriteString(formatCoord(pt.Y))
}

// formatCoord prints a coordinate with at most four decimals.
func formatCoord(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Cubics approximates the arc with cubic Bezier curves of at most 90
// degrees each, for backends without native arc support.
func (a ArcTo) Cubics() []CubicTo {
	a1 := a.StartAngle * math.Pi / 180
	a2 := a.EndAngle * math.Pi / 180
	if a2 <= a1 {
		return nil
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((a2 - a1) / maxAngle))
	angleStep := (a2 - a1) / float64(numSegments)

	out := make([]CubicTo, 0, numSegments)
	for i := 0; i < numSegments; i++ {
		s := a1 + float64(i)*angleStep
		out = append(out, arcSegment(a.Center.X, a.Center.Y, a.Radius, s, s+angleStep))
	}
	return out
}

// arcSegment returns the cubic approximating a single arc segment (<= 90 degrees).
func arcSegment(cx, cy, r, a1, a2 float64) CubicTo {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	return CubicTo{
		Control1: Pt(x1-alpha*r*sin1, y1+alpha*r*cos1),
		Control2: Pt(x2+alpha*r*sin2, y2-alpha*r*cos2),
		Point:    Pt(x2, y2),
	}
}
