package chart

import (
	"math"
	"testing"
)

const eps = 1e-9

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func assertFloats(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d values %v, want %d values %v", name, len(got), got, len(want), want)
	}
	for i := range got {
		if absDiff(got[i], want[i]) > tol {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

// values builds a normalized dataset from raw values.
func values(vs ...float64) []NormalizedPoint {
	points := make([]DataPoint, len(vs))
	for i, v := range vs {
		points[i] = DataPoint{Label: string(rune('A' + i)), Value: v}
	}
	return Normalize(points, DefaultPalette)
}

// finite reports whether every coordinate of every primitive is finite.
func finite(prims []Primitive) bool {
	ok := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}
	for _, p := range prims {
		switch p := p.(type) {
		case Rect:
			if !ok(p.X, p.Y, p.W, p.H) {
				return false
			}
		case PathSegment:
			for _, e := range p.Path.Elements() {
				switch e := e.(type) {
				case MoveTo:
					if !ok(e.Point.X, e.Point.Y) {
						return false
					}
				case LineTo:
					if !ok(e.Point.X, e.Point.Y) {
						return false
					}
				}
			}
		case ArcSector:
			if !ok(p.StartAngle, p.EndAngle, p.Start.X, p.Start.Y, p.End.X, p.End.Y) {
				return false
			}
		case Circle:
			if !ok(p.Center.X, p.Center.Y, p.Radius) {
				return false
			}
		case TextLabel:
			if !ok(p.Position.X, p.Position.Y) {
				return false
			}
		}
	}
	return true
}

// call is one recorded Backend invocation.
type call struct {
	op   string
	text string
	fill Color
}

// mockBackend records the calls it receives.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	background Color
	calls      []call
	beginErr   error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int, background Color) error {
	b.beginCalls++
	b.width, b.height, b.background = width, height, background
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) FillRect(_ Box, fill Color) {
	b.calls = append(b.calls, call{op: "rect", fill: fill})
}

func (b *mockBackend) FillPath(_ *Path, fill Color) {
	b.calls = append(b.calls, call{op: "fill", fill: fill})
}

func (b *mockBackend) StrokePath(_ *Path, stroke Color, _ float64) {
	b.calls = append(b.calls, call{op: "stroke", fill: stroke})
}

func (b *mockBackend) FillSector(_ Point, _, _, _ float64, fill Color) {
	b.calls = append(b.calls, call{op: "sector", fill: fill})
}

func (b *mockBackend) FillCircle(_ Point, _ float64, fill Color) {
	b.calls = append(b.calls, call{op: "circle", fill: fill})
}

func (b *mockBackend) DrawText(s string, _, _ float64, style TextStyle) {
	b.calls = append(b.calls, call{op: "text", text: s, fill: style.Fill})
}

func (b *mockBackend) count(op string) int {
	n := 0
	for _, c := range b.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
