package chart

// RenderChart validates points, normalizes them, runs the layout engine for
// typ and emits the primitives for opts.
//
// Malformed but well-typed data never fails: empty input yields an empty
// scene, and all-zero or all-negative values yield flat bars, a flat line
// or an empty pie. Only NaN or infinite values and chart types outside the
// closed set are rejected, with errors wrapping ErrInvalidValue and
// ErrUnknownChartType respectively.
func RenderChart(points []DataPoint, typ ChartType, opts Options) (*Scene, error) {
	if !typ.Valid() {
		_, err := LayoutFor(typ, nil)
		return nil, err
	}
	if err := Validate(points); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	normalized := Normalize(points, opts.Palette)
	layout, err := LayoutFor(typ, normalized)
	if err != nil {
		return nil, err
	}
	if layout.Degenerate() {
		Logger().Warn("chart: degenerate dataset, nothing to scale",
			"type", typ.String(), "points", len(points))
	}

	scene := Emit(layout, opts)
	Logger().Debug("chart: rendered",
		"type", typ.String(),
		"points", len(points),
		"primitives", len(scene.Primitives))
	return scene, nil
}
