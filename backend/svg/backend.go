// Package svg provides an SVG backend for chart scenes, built on SVGo.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/chart/backend/svg"
//
//	backend, _ := chart.NewBackend("svg")
//	_ = scene.Playback(backend)
//	_, _ = backend.(chart.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/gogpu/chart"
)

func init() {
	chart.Register("svg", func() chart.Backend {
		return NewBackend()
	})
}

// decimals is the precision of every coordinate in the document.
const decimals = 2

// Backend writes a standalone SVG document.
// It implements chart.Backend, chart.WriterBackend and chart.FileBackend.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	begun  bool
	done   bool
}

// Ensure Backend implements all required interfaces.
var (
	_ chart.Backend       = (*Backend)(nil)
	_ chart.WriterBackend = (*Backend)(nil)
	_ chart.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	b := &Backend{}
	b.canvas = svgo.New(&b.buf)
	b.canvas.Decimals = decimals
	return b
}

// Begin starts a new document. Any previous output is discarded.
func (b *Backend) Begin(width, height int, background chart.Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.buf.Reset()
	b.begun, b.done = true, false

	w, h := float64(width), float64(height)
	b.canvas.Startview(w, h, 0, 0, w, h)
	b.canvas.Rect(0, 0, w, h, fill(background))
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if !b.begun {
		return fmt.Errorf("svg: End called before Begin")
	}
	if !b.done {
		b.canvas.End()
		b.done = true
	}
	return nil
}

// FillRect writes a <rect>.
func (b *Backend) FillRect(r chart.Box, c chart.Color) {
	b.canvas.Rect(r.X, r.Y, r.W, r.H, fill(c))
}

// FillPath writes a filled <path>.
func (b *Backend) FillPath(p *chart.Path, c chart.Color) {
	b.canvas.Path(p.String(), fill(c))
}

// StrokePath writes a stroked, unfilled <path>.
func (b *Backend) StrokePath(p *chart.Path, c chart.Color, width float64) {
	b.canvas.Path(p.String(),
		`fill="none"`,
		attr("stroke", c.Resolve().Hex()),
		fmt.Sprintf(`stroke-width="%.*f"`, decimals, width),
		`stroke-linejoin="round"`,
		`stroke-linecap="round"`,
	)
}

// FillSector writes a pie slice as a closed <path>: center, out to the
// start angle, clockwise arc, back to center.
func (b *Backend) FillSector(center chart.Point, r, startDeg, endDeg float64, c chart.Color) {
	sector := chart.ArcSector{
		Center:     center,
		Radius:     r,
		StartAngle: startDeg,
		EndAngle:   endDeg,
		Start:      chart.Polar(center, r, startDeg),
		End:        chart.Polar(center, r, endDeg),
		LargeArc:   endDeg-startDeg > 180,
	}
	b.FillPath(sector.Path(), c)
}

// FillCircle writes a <circle>.
func (b *Backend) FillCircle(center chart.Point, r float64, c chart.Color) {
	b.canvas.Circle(center.X, center.Y, r, fill(c))
}

// DrawText writes a <text> element. SVGo escapes the content.
func (b *Backend) DrawText(s string, x, y float64, style chart.TextStyle) {
	b.canvas.Text(x, y, s,
		`font-family="sans-serif"`,
		fmt.Sprintf(`font-size="%.*f"`, decimals, style.Size),
		attr("text-anchor", anchor(style.Anchor)),
		attr("dominant-baseline", baseline(style.Baseline)),
		fill(style.Fill),
	)
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, fmt.Errorf("svg: WriteTo called before End")
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return fmt.Errorf("svg: SaveToFile called before End")
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("svg: save %s: %w", path, err)
	}
	return nil
}

// Bytes returns the document. Valid after End.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// fill returns the fill attribute for c. Colors are written in resolved
// hex form so caller-supplied strings never reach the markup.
func fill(c chart.Color) string {
	return attr("fill", c.Resolve().Hex())
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

func anchor(a chart.Anchor) string {
	switch a {
	case chart.AnchorMiddle:
		return "middle"
	case chart.AnchorEnd:
		return "end"
	}
	return "start"
}

func baseline(b chart.Baseline) string {
	switch b {
	case chart.BaselineMiddle:
		return "central"
	case chart.BaselineTop:
		return "hanging"
	}
	return "auto"
}
