// Package raster provides a raster backend for chart scenes.
// It renders primitives to an RGBA image with golang.org/x/image/vector
// and draws labels with the embedded Go Regular font.
//
// # Supported Features
//
//   - Solid fills for rectangles, paths, sectors and circles
//   - Strokes with round joins (line charts, gridlines)
//   - Anchored text labels measured with HarfBuzz shaping
//   - PNG output
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/chart/backend/raster"
//
//	backend := raster.NewBackend()
//	_ = scene.Playback(backend)
//	_ = backend.SavePNG("chart.png")
//	img := backend.Image()
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/chart"
)

func init() {
	chart.Register("raster", func() chart.Backend {
		return NewBackend()
	})
}

// Backend renders scenes to a pixel image.
// It implements chart.Backend, chart.WriterBackend and chart.FileBackend.
type Backend struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	text   *textRenderer
	width  int
	height int
}

// Ensure Backend implements all required interfaces.
var (
	_ chart.Backend       = (*Backend)(nil)
	_ chart.WriterBackend = (*Backend)(nil)
	_ chart.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a width x height image filled with background.
func (b *Backend) Begin(width, height int, background chart.Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(background.Resolve().Color()), image.Point{}, draw.Src)

	b.z = vector.NewRasterizer(width, height)
	b.z.DrawOp = draw.Over

	if b.text == nil {
		tr, err := newTextRenderer()
		if err != nil {
			return fmt.Errorf("raster: load font: %w", err)
		}
		b.text = tr
	}
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.img == nil {
		return fmt.Errorf("raster: End called before Begin")
	}
	return nil
}

// FillRect fills an axis-aligned rectangle.
func (b *Backend) FillRect(r chart.Box, fill chart.Color) {
	b.begin()
	b.z.MoveTo(f32(r.X), f32(r.Y))
	b.z.LineTo(f32(r.X+r.W), f32(r.Y))
	b.z.LineTo(f32(r.X+r.W), f32(r.Y+r.H))
	b.z.LineTo(f32(r.X), f32(r.Y+r.H))
	b.z.ClosePath()
	b.paint(fill)
}

// FillPath fills a closed path.
func (b *Backend) FillPath(p *chart.Path, fill chart.Color) {
	b.begin()
	b.addPath(p)
	b.paint(fill)
}

// StrokePath strokes a path as a union of segment quads and round joins.
// Arcs and curves are approximated by their chords.
func (b *Backend) StrokePath(p *chart.Path, stroke chart.Color, width float64) {
	if width <= 0 {
		return
	}
	hw := width / 2
	b.begin()
	for _, poly := range polylines(p) {
		for i := 1; i < len(poly); i++ {
			b.addQuad(poly[i-1], poly[i], hw)
		}
		for _, pt := range poly {
			b.addCircle(pt, hw)
		}
	}
	b.paint(stroke)
}

// FillSector fills a pie slice.
func (b *Backend) FillSector(center chart.Point, r, startDeg, endDeg float64, fill chart.Color) {
	sector := chart.ArcSector{
		Center:     center,
		Radius:     r,
		StartAngle: startDeg,
		EndAngle:   endDeg,
		Start:      chart.Polar(center, r, startDeg),
		End:        chart.Polar(center, r, endDeg),
	}
	b.FillPath(sector.Path(), fill)
}

// FillCircle fills a full circle.
func (b *Backend) FillCircle(center chart.Point, r float64, fill chart.Color) {
	if r <= 0 {
		return
	}
	b.begin()
	b.addCircle(center, r)
	b.paint(fill)
}

// DrawText draws an anchored label.
func (b *Backend) DrawText(s string, x, y float64, style chart.TextStyle) {
	if s == "" || b.img == nil {
		return
	}
	b.text.draw(b.img, s, x, y, style)
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.img
}

// WriteTo encodes the image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, fmt.Errorf("raster: WriteTo called before Begin")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the image as PNG.
func (b *Backend) SaveToFile(path string) error {
	return b.SavePNG(path)
}

// SavePNG saves the image as PNG.
func (b *Backend) SavePNG(path string) error {
	if b.img == nil {
		return fmt.Errorf("raster: SavePNG called before Begin")
	}
	// #nosec G304 -- output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := png.Encode(f, b.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// begin resets the rasterizer for a new shape.
func (b *Backend) begin() {
	b.z.Reset(b.width, b.height)
	b.z.DrawOp = draw.Over
}

// paint composites the accumulated shape onto the image.
func (b *Backend) paint(c chart.Color) {
	src := image.NewUniform(c.Resolve().Color())
	b.z.Draw(b.img, b.img.Bounds(), src, image.Point{})
}

func (b *Backend) addPath(p *chart.Path) {
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case chart.MoveTo:
			if open {
				b.z.ClosePath()
			}
			b.z.MoveTo(f32(e.Point.X), f32(e.Point.Y))
			open = true
		case chart.LineTo:
			b.z.LineTo(f32(e.Point.X), f32(e.Point.Y))
		case chart.ArcTo:
			for _, c := range e.Cubics() {
				b.cubeTo(c)
			}
		case chart.CubicTo:
			b.cubeTo(e)
		case chart.Close:
			b.z.ClosePath()
			open = false
		}
	}
	if open {
		b.z.ClosePath()
	}
}

func (b *Backend) cubeTo(c chart.CubicTo) {
	b.z.CubeTo(
		f32(c.Control1.X), f32(c.Control1.Y),
		f32(c.Control2.X), f32(c.Control2.Y),
		f32(c.Point.X), f32(c.Point.Y),
	)
}

// addQuad adds the rectangle covering segment p0-p1 widened by hw on
// each side, wound the same way as addCircle so overlaps accumulate.
func (b *Backend) addQuad(p0, p1 chart.Point, hw float64) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	b.z.MoveTo(f32(p0.X-nx), f32(p0.Y-ny))
	b.z.LineTo(f32(p1.X-nx), f32(p1.Y-ny))
	b.z.LineTo(f32(p1.X+nx), f32(p1.Y+ny))
	b.z.LineTo(f32(p0.X+nx), f32(p0.Y+ny))
	b.z.ClosePath()
}

func (b *Backend) addCircle(center chart.Point, r float64) {
	arc := chart.ArcTo{Center: center, Radius: r, StartAngle: 0, EndAngle: 360}
	start := chart.Polar(center, r, 0)
	b.z.MoveTo(f32(start.X), f32(start.Y))
	for _, c := range arc.Cubics() {
		b.cubeTo(c)
	}
	b.z.ClosePath()
}

// polylines flattens a path into its vertex lists, one per subpath.
func polylines(p *chart.Path) [][]chart.Point {
	var (
		out [][]chart.Point
		cur []chart.Point
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case chart.MoveTo:
			flush()
			cur = []chart.Point{e.Point}
		case chart.LineTo:
			cur = append(cur, e.Point)
		case chart.ArcTo:
			for _, c := range e.Cubics() {
				cur = append(cur, c.Point)
			}
		case chart.CubicTo:
			cur = append(cur, e.Point)
		case chart.Close:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
			flush()
		}
	}
	flush()
	return out
}

// maxCoord bounds pixel coordinates handed to the rasterizer. Geometry
// far outside the surface is still clipped correctly at this distance.
const maxCoord = 1 << 20

func f32(v float64) float32 {
	return float32(math.Max(-maxCoord, math.Min(maxCoord, v)))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
