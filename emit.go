package chart

// Emitter geometry in viewBox units.
const (
	labelRowHeight  = 8   // space under the plot for category labels
	valueRowHeight  = 6   // space above the plot for bar values
	labelGap        = 2   // distance between an element and its text
	legendRowHeight = 6   // height of one legend entry
	legendSwatch    = 4   // legend swatch side
	legendGap       = 4   // space between plot/labels and the legend
	gridStrokeWidth = 0.3 // gridline stroke
	lineStrokeWidth = 0.8 // line chart stroke
	markerRadius    = 1.2 // line chart point marker
	areaFillAlpha   = 0.25
)

// gridLines are the fixed horizontal gridlines drawn under bar and line
// charts, independent of the data. The last one is the baseline.
var gridLines = [...]float64{20, 40, 60, 80, 100}

// Scene is the flat primitive list produced for one chart, plus what a
// renderer needs to map it onto a surface.
type Scene struct {
	Type ChartType
	// ViewBox bounds every primitive. The plot area is [0,100]x[0,100];
	// label and legend rows extend it.
	ViewBox Box
	// Uniform requests equal x and y scales (pie and donut).
	Uniform    bool
	Width      int
	Height     int
	Animated   bool
	Background Color
	TextColor  Color
	Primitives []Primitive
}

// Empty reports whether the scene has nothing to draw.
func (s *Scene) Empty() bool {
	return len(s.Primitives) == 0
}

// Count returns how many primitives of kind k the scene holds.
func (s *Scene) Count(k PrimitiveKind) int {
	n := 0
	for _, p := range s.Primitives {
		if p.Kind() == k {
			n++
		}
	}
	return n
}

// emitter accumulates primitives for a single Emit call.
type emitter struct {
	opts   Options
	prims  []Primitive
	top    float64
	bottom float64
}

func (e *emitter) add(p Primitive) {
	e.prims = append(e.prims, p)
}

func (e *emitter) text(at Point, s string, anchor Anchor, base Baseline, role Role, index int) {
	e.add(TextLabel{
		Position: at,
		Text:     s,
		Anchor:   anchor,
		Baseline: base,
		Fill:     e.opts.TextColor,
		Role:     role,
		Index:    index,
	})
}

func (e *emitter) value(v float64) string {
	return FormatValue(e.opts.Locale, v)
}

// Emit converts a layout into primitives according to the label, value,
// grid and legend options. It performs no scaling of its own: every
// coordinate comes from the layout or from fixed emitter geometry.
// An empty layout yields an empty scene.
func Emit(layout Layout, opts Options) *Scene {
	opts = opts.withDefaults()
	typ := layout.ChartType()
	s := &Scene{
		Type:       typ,
		ViewBox:    Box{W: 100, H: 100},
		Uniform:    typ.Circular(),
		Width:      opts.Width,
		Height:     opts.Height,
		Animated:   opts.Animated,
		Background: opts.Background,
		TextColor:  opts.TextColor,
	}
	if layout.Len() == 0 {
		return s
	}

	e := &emitter{opts: opts, bottom: 100}
	if opts.ShowGrid && !typ.Circular() {
		e.grid()
	}
	layout.emit(e)

	s.Primitives = e.prims
	s.ViewBox = Box{X: 0, Y: e.top, W: 100, H: e.bottom - e.top}
	return s
}

func (e *emitter) grid() {
	for _, y := range gridLines {
		p := NewPath()
		p.MoveTo(0, y)
		p.LineTo(100, y)
		e.add(PathSegment{
			Path:        p,
			Stroke:      e.opts.GridColor,
			StrokeWidth: gridStrokeWidth,
			Role:        RoleGrid,
			Index:       -1,
		})
	}
}

// legendEntry is one legend row. Share is the pie percentage, zero for
// other chart types.
type legendEntry struct {
	Point NormalizedPoint
	Share float64
}

// mergeLegend collapses entries with the same label and color into the
// first of them, summing values and shares.
func mergeLegend(entries []legendEntry) []legendEntry {
	type key struct {
		label string
		color Color
	}
	seen := make(map[key]int, len(entries))
	out := make([]legendEntry, 0, len(entries))
	for _, en := range entries {
		k := key{en.Point.Label, en.Point.Color}
		if i, ok := seen[k]; ok {
			out[i].Point.Value += en.Point.Value
			out[i].Share += en.Share
			continue
		}
		seen[k] = len(out)
		out = append(out, en)
	}
	return out
}

// legend lists one swatch and caption per distinct label and color below
// everything else.
func (e *emitter) legend(entries []legendEntry, caption func(legendEntry) string) {
	y := e.bottom + legendGap
	for _, en := range mergeLegend(entries) {
		p := en.Point
		e.add(Rect{
			Box:   Box{X: 0, Y: y + (legendRowHeight-legendSwatch)/2, W: legendSwatch, H: legendSwatch},
			Fill:  p.Color,
			Role:  RoleLegend,
			Index: p.Index,
		})
		e.text(Pt(legendSwatch+labelGap, y+legendRowHeight/2), caption(en), AnchorStart, BaselineMiddle, RoleLegend, p.Index)
		y += legendRowHeight
	}
	e.bottom = y
}

// sliceValue is the raw value of a slice annotated with its share,
// e.g. "25 (25%)".
func (e *emitter) sliceValue(v, pct float64) string {
	return e.value(v) + " (" + FormatPercent(e.opts.Locale, pct) + ")"
}

func (e *emitter) caption(en legendEntry) string {
	p := en.Point
	if e.opts.ShowValues {
		return p.Label + ": " + e.value(p.Value)
	}
	return p.Label
}

func (l BarLayout) emit(e *emitter) {
	for _, b := range l.Bars {
		e.add(Rect{Box: b.Box, Fill: b.Point.Color, Role: RoleData, Index: b.Point.Index})
	}

	cx := func(b BarItem) float64 { return b.Box.X + b.Box.W/2 }
	if e.opts.ShowValues {
		e.top = -valueRowHeight
		for _, b := range l.Bars {
			e.text(Pt(cx(b), b.Box.Y-labelGap), e.value(b.Point.Value), AnchorMiddle, BaselineBottom, RoleLabel, b.Point.Index)
		}
	}
	if e.opts.ShowLabels {
		for _, b := range l.Bars {
			e.text(Pt(cx(b), 100+labelGap), b.Point.Label, AnchorMiddle, BaselineTop, RoleLabel, b.Point.Index)
		}
		e.bottom = 100 + labelRowHeight
	}
	if e.opts.ShowLegend {
		entries := make([]legendEntry, len(l.Bars))
		for i, b := range l.Bars {
			entries[i] = legendEntry{Point: b.Point}
		}
		e.legend(entries, e.caption)
	}
}

func (l LinePath) emit(e *emitter) {
	stroke := l.Points[0].Point.Color
	if l.Filled {
		e.add(PathSegment{
			Path:  l.Path,
			Fill:  stroke.WithAlpha(areaFillAlpha),
			Role:  RoleData,
			Index: -1,
		})
		// Outline only along the data, not the baseline closure.
		outline := NewPath()
		for i, p := range l.Points {
			if i == 0 {
				outline.MoveTo(p.X, p.Y)
			} else {
				outline.LineTo(p.X, p.Y)
			}
		}
		e.add(PathSegment{Path: outline, Stroke: stroke, StrokeWidth: lineStrokeWidth, Role: RoleData, Index: -1})
	} else {
		e.add(PathSegment{Path: l.Path, Stroke: stroke, StrokeWidth: lineStrokeWidth, Role: RoleData, Index: -1})
	}

	for _, p := range l.Points {
		e.add(Circle{Center: Pt(p.X, p.Y), Radius: markerRadius, Fill: p.Point.Color, Role: RoleData, Index: p.Point.Index})
	}
	if e.opts.ShowValues {
		for _, p := range l.Points {
			e.text(Pt(p.X, p.Y-markerRadius-labelGap), e.value(p.Point.Value), AnchorMiddle, BaselineBottom, RoleLabel, p.Point.Index)
		}
	}
	if e.opts.ShowLabels {
		for _, p := range l.Points {
			e.text(Pt(p.X, 100+labelGap), p.Point.Label, AnchorMiddle, BaselineTop, RoleLabel, p.Point.Index)
		}
		e.bottom = 100 + labelRowHeight
	}
	if e.opts.ShowLegend {
		entries := make([]legendEntry, len(l.Points))
		for i, p := range l.Points {
			entries[i] = legendEntry{Point: p.Point}
		}
		e.legend(entries, e.caption)
	}
}

func (l PieLayout) emit(e *emitter) {
	for _, s := range l.Slices {
		switch {
		case s.Hidden:
		case s.Full:
			e.add(Circle{Center: l.Center, Radius: l.Radius, Fill: s.Point.Color, Role: RoleData, Index: s.Point.Index})
		default:
			e.add(ArcSector{
				Center:     l.Center,
				Radius:     l.Radius,
				StartAngle: s.StartAngle,
				EndAngle:   s.EndAngle,
				Start:      s.Start,
				End:        s.End,
				LargeArc:   s.LargeArc,
				Fill:       s.Point.Color,
				Index:      s.Point.Index,
			})
		}
	}
	if l.Donut {
		e.add(Circle{
			Center: l.Center,
			Radius: l.Radius * e.opts.InnerRadiusRatio,
			Fill:   e.opts.Background,
			Role:   RoleHole,
			Index:  -1,
		})
	}

	for _, s := range l.Slices {
		if s.Hidden {
			continue
		}
		at := s.LabelAt
		if s.Full && !l.Donut {
			at = l.Center
		}
		switch {
		case e.opts.ShowLabels && e.opts.ShowValues:
			e.text(at, s.Point.Label, AnchorMiddle, BaselineBottom, RoleLabel, s.Point.Index)
			e.text(at, e.sliceValue(s.Point.Value, s.Percentage), AnchorMiddle, BaselineTop, RoleLabel, s.Point.Index)
		case e.opts.ShowLabels:
			e.text(at, s.Point.Label, AnchorMiddle, BaselineMiddle, RoleLabel, s.Point.Index)
		case e.opts.ShowValues:
			e.text(at, e.sliceValue(s.Point.Value, s.Percentage), AnchorMiddle, BaselineMiddle, RoleLabel, s.Point.Index)
		}
	}

	if e.opts.ShowLegend {
		entries := make([]legendEntry, len(l.Slices))
		for i, s := range l.Slices {
			entries[i] = legendEntry{Point: s.Point, Share: s.Percentage}
		}
		e.legend(entries, func(en legendEntry) string {
			if !e.opts.ShowValues {
				return en.Point.Label
			}
			return en.Point.Label + ": " + e.sliceValue(en.Point.Value, en.Share)
		})
	}
}
