package chart

// barFill is the share of each slot covered by its bar.
const barFill = 0.8

// BarItem is one laid out bar. Box is the bar rectangle in viewBox
// coordinates; its bottom edge is the baseline.
type BarItem struct {
	Point          NormalizedPoint
	HeightFraction float64
	Box            Box
}

// BarLayout is the result of LayoutBars.
type BarLayout struct {
	Bars     []BarItem
	MaxValue float64
	// SlotWidth is the horizontal space allotted to each bar.
	SlotWidth float64
}

// LayoutBars scales every value against max(0, max(values)).
// Each HeightFraction lies in [0, 1]; the largest positive value reaches 1.
// When no value is positive every bar is flat at the baseline.
func LayoutBars(points []NormalizedPoint) BarLayout {
	l := BarLayout{
		Bars:     make([]BarItem, len(points)),
		MaxValue: maxValue(points, 0),
	}
	if len(points) == 0 {
		return l
	}

	l.SlotWidth = 100 / float64(len(points))
	barWidth := l.SlotWidth * barFill
	for i, p := range points {
		frac := 0.0
		if l.MaxValue > 0 {
			frac = clamp01(p.Value / l.MaxValue)
		}
		h := frac * 100
		l.Bars[i] = BarItem{
			Point:          p,
			HeightFraction: frac,
			Box: Box{
				X: float64(i)*l.SlotWidth + (l.SlotWidth-barWidth)/2,
				Y: 100 - h,
				W: barWidth,
				H: h,
			},
		}
	}
	return l
}

// ChartType implements Layout.
func (BarLayout) ChartType() ChartType { return Bar }

// Len implements Layout.
func (l BarLayout) Len() int { return len(l.Bars) }

// Degenerate implements Layout.
func (l BarLayout) Degenerate() bool { return len(l.Bars) > 0 && l.MaxValue <= 0 }

// HeightFractions returns the fraction of every bar in input order.
func (l BarLayout) HeightFractions() []float64 {
	out := make([]float64, len(l.Bars))
	for i, b := range l.Bars {
		out[i] = b.HeightFraction
	}
	return out
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
