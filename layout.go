package chart

import "strconv"

// Layout is the type-specific geometry computed for one chart type.
// Implementations are BarLayout, LinePath and PieLayout; the set is closed.
type Layout interface {
	// ChartType returns the chart type the layout was computed for.
	ChartType() ChartType

	// Len returns the number of laid out points.
	Len() int

	// Degenerate reports a non-empty dataset that cannot be scaled,
	// e.g. every value <= 0.
	Degenerate() bool

	// emit appends the layout's primitives to e.
	emit(e *emitter)
}

// LayoutFor runs the layout engine selected by typ on normalized points.
// It is the single dispatch point between chart types and engines.
func LayoutFor(typ ChartType, points []NormalizedPoint) (Layout, error) {
	switch typ {
	case Bar:
		return LayoutBars(points), nil
	case Line:
		return LayoutLine(points, false), nil
	case Area:
		return LayoutLine(points, true), nil
	case Pie:
		return LayoutPie(points, false), nil
	case Donut:
		return LayoutPie(points, true), nil
	default:
		return nil, &UnknownChartTypeError{Name: strconv.Itoa(int(typ))}
	}
}
