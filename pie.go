package chart

import "math"

// Pie geometry in viewBox coordinates.
const (
	pieCenterX = 50
	pieCenterY = 50
	pieRadius  = 40

	// pieStartAngle puts the first slice at 12 o'clock.
	pieStartAngle = -90.0

	// fullCircleEpsilon absorbs rounding when a slice carries the whole total.
	fullCircleEpsilon = 1e-9
)

// ArcSlice is one laid out pie slice. Angles are in degrees, clockwise.
type ArcSlice struct {
	Point      NormalizedPoint
	StartAngle float64
	EndAngle   float64
	// Percentage of the total in [0, 100]. Values <= 0 count as 0.
	Percentage float64
	// Start and End are the endpoints of the outer arc.
	Start    Point
	End      Point
	LargeArc bool
	// Full marks a slice that covers the whole circle. Its start and end
	// points coincide, so it is drawn as a circle rather than an arc.
	Full bool
	// Hidden marks a zero-weight slice (value <= 0). It keeps its place
	// in the angle sequence but spans no angle.
	Hidden bool
	// LabelAt is the anchor for on-slice text, at the middle angle.
	LabelAt Point
}

// Sweep returns the angle spanned by the slice.
func (s ArcSlice) Sweep() float64 {
	return s.EndAngle - s.StartAngle
}

// PieLayout is the result of LayoutPie.
type PieLayout struct {
	Slices []ArcSlice
	Donut  bool
	Center Point
	Radius float64
	// Total is the sum of positive values. It may be +Inf when that sum
	// exceeds the float64 range; angles do not depend on it.
	Total float64
	// points is kept for Degenerate: an empty Slices list can mean either
	// no input or a zero total.
	points int
}

// LayoutPie maps values to contiguous sectors starting at 12 o'clock.
//
// Only positive values carry weight. When the weighted total is zero the
// slice list is empty. The donut flag does not change any angle; it only
// adds the inner cut-out when the layout is emitted.
func LayoutPie(points []NormalizedPoint, donut bool) PieLayout {
	l := PieLayout{
		Donut:  donut,
		Center: Pt(pieCenterX, pieCenterY),
		Radius: pieRadius,
		points: len(points),
	}
	// Weights are summed relative to the largest one so that the sum
	// stays finite for any finite input.
	var maxW, scaled float64
	for _, p := range points {
		maxW = math.Max(maxW, p.Value)
	}
	if maxW == 0 {
		return l
	}
	for _, p := range points {
		scaled += math.Max(0, p.Value) / maxW
	}
	l.Total = maxW * scaled

	labelRadius := l.Radius * 0.65
	if donut {
		labelRadius = l.Radius * 0.8
	}

	l.Slices = make([]ArcSlice, len(points))
	current := pieStartAngle
	for i, p := range points {
		weight := math.Max(0, p.Value) / maxW
		share := weight / scaled
		sweep := share * 360
		end := current + sweep
		mid := current + sweep/2
		l.Slices[i] = ArcSlice{
			Point:      p,
			StartAngle: current,
			EndAngle:   end,
			Percentage: share * 100,
			Start:      Polar(l.Center, l.Radius, current),
			End:        Polar(l.Center, l.Radius, end),
			LargeArc:   sweep > 180,
			Full:       sweep >= 360-fullCircleEpsilon,
			Hidden:     weight == 0,
			LabelAt:    Polar(l.Center, labelRadius, mid),
		}
		current = end
	}
	return l
}

// ChartType implements Layout.
func (l PieLayout) ChartType() ChartType {
	if l.Donut {
		return Donut
	}
	return Pie
}

// Len implements Layout.
func (l PieLayout) Len() int { return len(l.Slices) }

// Degenerate implements Layout.
func (l PieLayout) Degenerate() bool { return l.points > 0 && len(l.Slices) == 0 }

// TotalAngle returns the sum of all slice sweeps, 360 whenever Total > 0.
func (l PieLayout) TotalAngle() float64 {
	var sum float64
	for _, s := range l.Slices {
		sum += s.Sweep()
	}
	return sum
}
