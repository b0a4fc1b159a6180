package chart

import "math"

// lineHeadroom is the viewBox height reserved above the largest value.
const lineHeadroom = 20

// LinePoint is a point of a line or area chart in viewBox coordinates.
type LinePoint struct {
	Point NormalizedPoint
	X, Y  float64
}

// LinePath is the result of LayoutLine.
type LinePath struct {
	Points   []LinePoint
	Filled   bool
	MaxValue float64
	// Path runs through every point; for area charts it is closed down
	// to the baseline. Empty when there are no points.
	Path *Path
}

// LayoutLine spaces points evenly across [0, 100] and maps values to
// y = 100 - value/max*80, with max = max(1, max(values)). A single point is
// centered at x = 50. With filled set the path continues to the baseline
// under the last point, back under the first, and closes.
func LayoutLine(points []NormalizedPoint, filled bool) LinePath {
	l := LinePath{
		Points:   make([]LinePoint, len(points)),
		Filled:   filled,
		MaxValue: maxValue(points, 1),
		Path:     NewPath(),
	}
	n := len(points)
	if n == 0 {
		return l
	}

	for i, p := range points {
		x := 50.0
		if n > 1 {
			x = float64(i) / float64(n-1) * 100
		}
		// Values far below zero are not clamped, but y must stay finite.
		y := 100 - p.Value/l.MaxValue*(100-lineHeadroom)
		y = math.Max(-math.MaxFloat64, math.Min(math.MaxFloat64, y))
		l.Points[i] = LinePoint{Point: p, X: x, Y: y}
		if i == 0 {
			l.Path.MoveTo(x, y)
		} else {
			l.Path.LineTo(x, y)
		}
	}

	if filled {
		l.Path.LineTo(l.Points[n-1].X, 100)
		l.Path.LineTo(l.Points[0].X, 100)
		l.Path.Close()
	}
	return l
}

// ChartType implements Layout.
func (l LinePath) ChartType() ChartType {
	if l.Filled {
		return Area
	}
	return Line
}

// Len implements Layout.
func (l LinePath) Len() int { return len(l.Points) }

// Degenerate implements Layout.
func (l LinePath) Degenerate() bool {
	if len(l.Points) == 0 {
		return false
	}
	for _, p := range l.Points {
		if p.Point.Value > 0 {
			return false
		}
	}
	return true
}

// D returns the path in SVG path data syntax.
func (l LinePath) D() string {
	if l.Path == nil {
		return ""
	}
	return l.Path.String()
}

// Xs returns the x coordinate of every point in input order.
func (l LinePath) Xs() []float64 {
	out := make([]float64, len(l.Points))
	for i, p := range l.Points {
		out[i] = p.X
	}
	return out
}
