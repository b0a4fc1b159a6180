package chart

import "fmt"

// Playback defaults.
const (
	// DefaultWidth is used when neither the scene nor the caller sets a width.
	DefaultWidth = 600

	// DefaultTextSize is the label font size in pixels.
	DefaultTextSize = 12

	// DefaultPadding is the empty margin around the viewBox, in pixels.
	DefaultPadding = 16
)

// Playback replays the scene onto b at the scene's pixel size. A zero
// width stands for "fill the container"; Playback uses DefaultWidth.
//
// Playback calls Begin and End itself. Output methods on b are valid once
// it returns nil.
func (s *Scene) Playback(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	width, height := s.Width, s.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultOptions().Height
	}

	bg := s.Background
	if bg.IsZero() {
		bg = DefaultOptions().Background
	}
	if err := b.Begin(width, height, bg); err != nil {
		return fmt.Errorf("chart: begin playback: %w", err)
	}

	v := NewViewport(s.ViewBox, width, height, DefaultPadding, s.Uniform)
	for _, p := range s.Primitives {
		replay(b, v, p)
	}

	if err := b.End(); err != nil {
		return fmt.Errorf("chart: end playback: %w", err)
	}
	Logger().Debug("chart: playback done",
		"type", s.Type.String(), "width", width, "height", height,
		"primitives", len(s.Primitives))
	return nil
}

// replay maps one primitive to pixels and hands it to the backend.
func replay(b Backend, v Viewport, p Primitive) {
	switch p := p.(type) {
	case Rect:
		if p.W <= 0 || p.H <= 0 {
			return
		}
		b.FillRect(v.MapBox(p.Box), p.Fill)
	case PathSegment:
		if p.Path == nil || p.Path.Len() == 0 {
			return
		}
		path := p.Path.Transform(v)
		if !p.Fill.IsZero() {
			b.FillPath(path, p.Fill)
		}
		if !p.Stroke.IsZero() {
			b.StrokePath(path, p.Stroke, v.Length(p.StrokeWidth))
		}
	case ArcSector:
		b.FillSector(v.Map(p.Center), v.Length(p.Radius), p.StartAngle, p.EndAngle, p.Fill)
	case Circle:
		b.FillCircle(v.Map(p.Center), v.Length(p.Radius), p.Fill)
	case TextLabel:
		at := v.Map(p.Position)
		b.DrawText(p.Text, at.X, at.Y, TextStyle{
			Anchor:   p.Anchor,
			Baseline: p.Baseline,
			Size:     DefaultTextSize,
			Fill:     p.Fill,
		})
	}
}
