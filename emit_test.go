package chart

import "testing"

func TestEmit_EmptyLayouts(t *testing.T) {
	opts := DefaultOptions(WithLabels(true), WithValues(true), WithGrid(true), WithLegend(true))
	for _, typ := range ChartTypes() {
		layout, err := LayoutFor(typ, nil)
		if err != nil {
			t.Fatalf("LayoutFor(%v): %v", typ, err)
		}
		if s := Emit(layout, opts); !s.Empty() {
			t.Errorf("%v: %d primitives for empty input, want 0", typ, len(s.Primitives))
		}
	}
}

func TestEmit_Bars(t *testing.T) {
	s := Emit(LayoutBars(values(1, 2, 3)), DefaultOptions())
	if got := s.Count(KindRect); got != 3 {
		t.Errorf("rects = %d, want 3", got)
	}
	if got := s.Count(KindText); got != 0 {
		t.Errorf("labels = %d, want 0 without label options", got)
	}
	if s.ViewBox != (Box{W: 100, H: 100}) {
		t.Errorf("ViewBox = %+v, want plot area only", s.ViewBox)
	}
}

func TestEmit_LabelsAndValues(t *testing.T) {
	tests := []struct {
		name      string
		typ       ChartType
		opts      []Option
		wantTexts int
	}{
		{"bar labels", Bar, []Option{WithLabels(true)}, 3},
		{"bar values", Bar, []Option{WithValues(true)}, 3},
		{"bar both", Bar, []Option{WithLabels(true), WithValues(true)}, 6},
		{"line labels", Line, []Option{WithLabels(true)}, 3},
		{"area values", Area, []Option{WithValues(true)}, 3},
		{"pie labels", Pie, []Option{WithLabels(true)}, 3},
		{"pie both", Pie, []Option{WithLabels(true), WithValues(true)}, 6},
		{"donut values", Donut, []Option{WithValues(true)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := LayoutFor(tt.typ, values(1, 2, 3))
			if err != nil {
				t.Fatal(err)
			}
			s := Emit(layout, DefaultOptions(tt.opts...))
			if got := s.Count(KindText); got != tt.wantTexts {
				t.Errorf("text labels = %d, want %d", got, tt.wantTexts)
			}
		})
	}
}

func TestEmit_BarValuesExtendViewBoxUp(t *testing.T) {
	s := Emit(LayoutBars(values(1, 2)), DefaultOptions(WithValues(true), WithLabels(true)))
	if s.ViewBox.Y >= 0 {
		t.Errorf("ViewBox.Y = %v, want room above the plot", s.ViewBox.Y)
	}
	if s.ViewBox.MaxY() <= 100 {
		t.Errorf("ViewBox bottom = %v, want room below the plot", s.ViewBox.MaxY())
	}
}

func TestEmit_Grid(t *testing.T) {
	opts := DefaultOptions(WithGrid(true))
	for _, typ := range []ChartType{Bar, Line, Area} {
		layout, _ := LayoutFor(typ, values(4, 2))
		s := Emit(layout, opts)
		grid := 0
		for _, p := range s.Primitives {
			if ps, ok := p.(PathSegment); ok && ps.Role == RoleGrid {
				grid++
			}
		}
		if grid != len(gridLines) {
			t.Errorf("%v: %d gridlines, want %d", typ, grid, len(gridLines))
		}
		if first, ok := s.Primitives[0].(PathSegment); !ok || first.Role != RoleGrid {
			t.Errorf("%v: grid not drawn first", typ)
		}
	}

	for _, typ := range []ChartType{Pie, Donut} {
		layout, _ := LayoutFor(typ, values(4, 2))
		s := Emit(layout, opts)
		if s.Count(KindPath) != 0 {
			t.Errorf("%v: grid emitted for circular chart", typ)
		}
	}
}

func TestEmit_GridIndependentOfData(t *testing.T) {
	opts := DefaultOptions(WithGrid(true))
	a := Emit(LayoutBars(values(1)), opts)
	b := Emit(LayoutBars(values(1000, -4, 7)), opts)
	for i := range gridLines {
		pa := a.Primitives[i].(PathSegment)
		pb := b.Primitives[i].(PathSegment)
		if pa.D() != pb.D() {
			t.Errorf("gridline %d differs: %q vs %q", i, pa.D(), pb.D())
		}
	}
}

func TestEmit_Legend(t *testing.T) {
	points := values(5, 3, 2)
	s := Emit(LayoutPie(points, false), DefaultOptions(WithLegend(true)))

	var swatches []Rect
	var captions []string
	for _, p := range s.Primitives {
		switch p := p.(type) {
		case Rect:
			if p.Role == RoleLegend {
				swatches = append(swatches, p)
			}
		case TextLabel:
			if p.Role == RoleLegend {
				captions = append(captions, p.Text)
			}
		}
	}
	if len(swatches) != 3 || len(captions) != 3 {
		t.Fatalf("legend has %d swatches and %d captions, want 3 each", len(swatches), len(captions))
	}
	for i, sw := range swatches {
		if sw.Fill != points[i].Color {
			t.Errorf("swatch %d fill = %q, want %q", i, sw.Fill, points[i].Color)
		}
		if captions[i] != points[i].Label {
			t.Errorf("caption %d = %q, want %q", i, captions[i], points[i].Label)
		}
		if sw.Y < 100 {
			t.Errorf("swatch %d at y=%v overlaps the plot", i, sw.Y)
		}
	}
	if s.ViewBox.MaxY() < swatches[2].Y+legendSwatch {
		t.Errorf("ViewBox bottom %v does not contain legend", s.ViewBox.MaxY())
	}
}

func TestEmit_LegendWithValues(t *testing.T) {
	s := Emit(LayoutPie(values(-2, 1, 3), false), DefaultOptions(WithLegend(true), WithValues(true)))
	var captions []string
	for _, p := range s.Primitives {
		if tl, ok := p.(TextLabel); ok && tl.Role == RoleLegend {
			captions = append(captions, tl.Text)
		}
	}
	want := []string{"A: -2 (0%)", "B: 1 (25%)", "C: 3 (75%)"}
	for i := range want {
		if captions[i] != want[i] {
			t.Errorf("caption %d = %q, want %q", i, captions[i], want[i])
		}
	}
}

func TestEmit_HiddenSlicesHaveNoLabel(t *testing.T) {
	s := Emit(LayoutPie(values(-2, 1, 3), false), DefaultOptions(WithLabels(true)))
	if got := s.Count(KindArcSector); got != 2 {
		t.Errorf("sectors = %d, want 2", got)
	}
	for _, p := range s.Primitives {
		if tl, ok := p.(TextLabel); ok && tl.Index == 0 {
			t.Errorf("label %q emitted for zero-weight slice", tl.Text)
		}
	}
}

func TestEmit_LineMarkersUsePointColors(t *testing.T) {
	points := Normalize([]DataPoint{{Value: 1, Color: "#f00"}, {Value: 2}}, DefaultPalette)
	s := Emit(LayoutLine(points, false), DefaultOptions())
	var markers []Circle
	for _, p := range s.Primitives {
		if c, ok := p.(Circle); ok {
			markers = append(markers, c)
		}
	}
	if len(markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(markers))
	}
	if markers[0].Fill != "#f00" || markers[1].Fill != DefaultPalette[1] {
		t.Errorf("marker fills = %q, %q", markers[0].Fill, markers[1].Fill)
	}
}

func TestEmit_AreaFill(t *testing.T) {
	s := Emit(LayoutLine(values(1, 2, 3), true), DefaultOptions())
	area, ok := s.Primitives[0].(PathSegment)
	if !ok {
		t.Fatalf("first primitive = %T, want PathSegment", s.Primitives[0])
	}
	if area.Fill.IsZero() || !area.Stroke.IsZero() {
		t.Errorf("area = fill %q stroke %q, want fill only", area.Fill, area.Stroke)
	}
	if a := area.Fill.Resolve().A; absDiff(a, areaFillAlpha) > 0.01 {
		t.Errorf("area alpha = %v, want %v", a, areaFillAlpha)
	}
}

func TestEmit_DegenerateNeverNaN(t *testing.T) {
	opts := DefaultOptions(WithLabels(true), WithValues(true), WithGrid(true), WithLegend(true))
	for _, typ := range ChartTypes() {
		for _, vs := range [][]float64{{0, 0, 0}, {-1, -5}, {0}, {3}} {
			layout, _ := LayoutFor(typ, values(vs...))
			s := Emit(layout, opts)
			if !finite(s.Primitives) {
				t.Errorf("%v %v: non-finite coordinates", typ, vs)
			}
		}
	}
}

func TestEmit_CircularScenesAreUniform(t *testing.T) {
	for _, typ := range ChartTypes() {
		layout, _ := LayoutFor(typ, values(1, 2))
		s := Emit(layout, DefaultOptions())
		if s.Uniform != typ.Circular() {
			t.Errorf("%v: Uniform = %v", typ, s.Uniform)
		}
	}
}

func TestEmit_PieValuesShowRawValue(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{"values", []Option{WithValues(true)}, []string{"25 (25%)", "75 (75%)"}},
		{"labels and values", []Option{WithLabels(true), WithValues(true)}, []string{"A", "25 (25%)", "B", "75 (75%)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, donut := range []bool{false, true} {
				s := Emit(LayoutPie(values(25, 75), donut), DefaultOptions(tt.opts...))
				var got []string
				for _, p := range s.Primitives {
					if tl, ok := p.(TextLabel); ok && tl.Role == RoleLabel {
						got = append(got, tl.Text)
					}
				}
				if len(got) != len(tt.want) {
					t.Fatalf("donut=%v: labels = %q, want %q", donut, got, tt.want)
				}
				for i := range tt.want {
					if got[i] != tt.want[i] {
						t.Errorf("donut=%v: label %d = %q, want %q", donut, i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func TestEmit_LegendMergesRepeatedEntries(t *testing.T) {
	tests := []struct {
		name   string
		typ    ChartType
		points []DataPoint
		want   []string
	}{
		{
			name: "pie sums value and share",
			typ:  Pie,
			points: []DataPoint{
				{Label: "A", Value: 1, Color: "red"},
				{Label: "A", Value: 3, Color: "red"},
				{Label: "B", Value: 4, Color: "blue"},
			},
			want: []string{"A: 4 (50%)", "B: 4 (50%)"},
		},
		{
			name: "bar sums value",
			typ:  Bar,
			points: []DataPoint{
				{Label: "A", Value: 1, Color: "red"},
				{Label: "A", Value: 2, Color: "red"},
			},
			want: []string{"A: 3"},
		},
		{
			name: "same label other color stays",
			typ:  Line,
			points: []DataPoint{
				{Label: "A", Value: 1, Color: "red"},
				{Label: "A", Value: 2, Color: "blue"},
			},
			want: []string{"A: 1", "A: 2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := LayoutFor(tt.typ, Normalize(tt.points, DefaultPalette))
			if err != nil {
				t.Fatal(err)
			}
			s := Emit(layout, DefaultOptions(WithLegend(true), WithValues(true)))
			var swatches int
			var captions []string
			for _, p := range s.Primitives {
				switch p := p.(type) {
				case Rect:
					if p.Role == RoleLegend {
						swatches++
					}
				case TextLabel:
					if p.Role == RoleLegend {
						captions = append(captions, p.Text)
					}
				}
			}
			if swatches != len(tt.want) || len(captions) != len(tt.want) {
				t.Fatalf("legend = %d swatches, captions %q, want %q", swatches, captions, tt.want)
			}
			for i := range tt.want {
				if captions[i] != tt.want[i] {
					t.Errorf("caption %d = %q, want %q", i, captions[i], tt.want[i])
				}
			}
		})
	}
}
