package chart

import "strings"

// ChartType selects the layout engine. The set is closed: every value maps
// to exactly one engine in LayoutFor.
type ChartType uint8

const (
	Bar   ChartType = iota // Vertical bars scaled to the dataset maximum
	Line                   // Evenly spaced polyline
	Area                   // Line closed down to the baseline and filled
	Pie                    // Proportional arc sectors
	Donut                  // Pie with an inner cut-out
)

// chartTypeNames maps ChartType values to their string representation.
var chartTypeNames = [...]string{
	Bar:   "bar",
	Line:  "line",
	Area:  "area",
	Pie:   "pie",
	Donut: "donut",
}

// ChartTypes returns every supported chart type in declaration order.
func ChartTypes() []ChartType {
	return []ChartType{Bar, Line, Area, Pie, Donut}
}

// String returns the lowercase name of the chart type.
func (t ChartType) String() string {
	if t.Valid() {
		return chartTypeNames[t]
	}
	return "unknown"
}

// Valid reports whether t belongs to the closed set.
func (t ChartType) Valid() bool {
	return int(t) < len(chartTypeNames)
}

// Circular reports whether the chart is laid out on a circle.
func (t ChartType) Circular() bool {
	return t == Pie || t == Donut
}

// ParseChartType parses a chart type name, case-insensitively.
func ParseChartType(s string) (ChartType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range chartTypeNames {
		if n == name {
			return ChartType(i), nil
		}
	}
	return 0, &UnknownChartTypeError{Name: s}
}

// MarshalText implements encoding.TextMarshaler.
func (t ChartType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &UnknownChartTypeError{Name: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ChartType) UnmarshalText(b []byte) error {
	parsed, err := ParseChartType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
