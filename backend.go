package chart

import "io"

// TextStyle describes how a backend should draw a label.
type TextStyle struct {
	Anchor   Anchor
	Baseline Baseline
	Size     float64 // pixels
	Fill     Color
}

// Backend is the interface that drawing surfaces implement to receive a
// Scene through Playback. All coordinates passed to a Backend are already
// in pixels.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using chart.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Ignore zero-area shapes rather than fail on them
type Backend interface {
	// Begin initializes the backend for a width x height surface filled
	// with background.
	Begin(width, height int, background Color) error

	// End finalizes the output. Output methods are valid afterwards.
	End() error

	// FillRect fills an axis-aligned rectangle.
	FillRect(b Box, fill Color)

	// FillPath fills a closed path using the non-zero rule.
	FillPath(p *Path, fill Color)

	// StrokePath strokes a path with the given width.
	StrokePath(p *Path, stroke Color, width float64)

	// FillSector fills a pie sector.
	FillSector(center Point, r, startDeg, endDeg float64, fill Color)

	// FillCircle fills a full circle.
	FillCircle(center Point, r float64, fill Color)

	// DrawText draws s anchored at (x, y).
	DrawText(s string, x, y float64, style TextStyle)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. Valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to path. Valid after End.
	SaveToFile(path string) error
}
