package chart

import (
	"errors"
	"fmt"
)

// Sentinel errors for the chart package.
var (
	// ErrUnknownChartType is returned when a ChartType is outside the closed set.
	ErrUnknownChartType = errors.New("chart: unknown chart type")

	// ErrInvalidValue is returned when a data point value is NaN or infinite.
	ErrInvalidValue = errors.New("chart: invalid value")

	// ErrNilBackend is returned by Playback when no backend is given.
	ErrNilBackend = errors.New("chart: nil backend")
)

// InvalidValueError reports the offending point of a dataset.
type InvalidValueError struct {
	Index int
	Label string
	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("chart: invalid value %v for point %d (%q)", e.Value, e.Index, e.Label)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// UnknownChartTypeError carries the rejected chart type name or number.
type UnknownChartTypeError struct {
	Name string
}

func (e *UnknownChartTypeError) Error() string {
	return fmt.Sprintf("chart: unknown chart type %q", e.Name)
}

func (e *UnknownChartTypeError) Unwrap() error { return ErrUnknownChartType }
