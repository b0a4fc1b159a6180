package chart

import "golang.org/x/text/language"

// Options configures RenderChart. Build one with DefaultOptions and
// functional options, or fill the struct directly.
//
// Example:
//
//	opts := chart.DefaultOptions(
//	    chart.WithLabels(true),
//	    chart.WithPalette(chart.Palette{"#111", "#999"}),
//	)
type Options struct {
	// Width in pixels. 0 means "fill the container".
	Width int
	// Height in pixels, 300 by default.
	Height int

	ShowLabels bool // category labels under bars/points, on slices
	ShowValues bool // raw values next to each element
	ShowGrid   bool // fixed horizontal gridlines (bar, line, area only)
	ShowLegend bool // color-key list below the plot

	// Animated is a presentation hint copied to the Scene untouched.
	Animated bool

	// Palette cycles over points without an explicit color.
	// Empty means DefaultPalette.
	Palette Palette

	// Locale controls digit grouping and decimal marks of value labels.
	Locale language.Tag

	// InnerRadiusRatio is the donut hole radius relative to the pie radius.
	InnerRadiusRatio float64

	// Background fills the donut hole so it matches the surface.
	Background Color
	TextColor  Color
	GridColor  Color
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the default options with opts applied in order.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Height:           300,
		Locale:           language.English,
		InnerRadiusRatio: 0.6,
		Background:       "#ffffff",
		TextColor:        "#374151",
		GridColor:        "#e5e7eb",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// withDefaults fills zero fields of a hand-built Options.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Width < 0 {
		o.Width = 0
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
	if o.Locale == language.Und {
		o.Locale = d.Locale
	}
	if o.InnerRadiusRatio <= 0 || o.InnerRadiusRatio >= 1 {
		o.InnerRadiusRatio = d.InnerRadiusRatio
	}
	if o.Background.IsZero() {
		o.Background = d.Background
	}
	if o.TextColor.IsZero() {
		o.TextColor = d.TextColor
	}
	if o.GridColor.IsZero() {
		o.GridColor = d.GridColor
	}
	return o
}

// WithSize sets the pixel size. A zero width means "fill the container".
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithLabels toggles category labels.
func WithLabels(show bool) Option {
	return func(o *Options) { o.ShowLabels = show }
}

// WithValues toggles value labels.
func WithValues(show bool) Option {
	return func(o *Options) { o.ShowValues = show }
}

// WithGrid toggles gridlines on bar, line and area charts.
func WithGrid(show bool) Option {
	return func(o *Options) { o.ShowGrid = show }
}

// WithLegend toggles the legend.
func WithLegend(show bool) Option {
	return func(o *Options) { o.ShowLegend = show }
}

// WithAnimated sets the animation hint passed through to the Scene.
func WithAnimated(animated bool) Option {
	return func(o *Options) { o.Animated = animated }
}

// WithPalette overrides DefaultPalette.
func WithPalette(p Palette) Option {
	return func(o *Options) { o.Palette = p }
}

// WithLocale sets the locale used to format values.
func WithLocale(tag language.Tag) Option {
	return func(o *Options) { o.Locale = tag }
}

// WithInnerRadius sets the donut hole ratio, in (0, 1).
func WithInnerRadius(ratio float64) Option {
	return func(o *Options) { o.InnerRadiusRatio = ratio }
}

// WithBackground sets the surface color used for the donut hole.
func WithBackground(c Color) Option {
	return func(o *Options) { o.Background = c }
}
