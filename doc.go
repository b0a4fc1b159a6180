// Package chart computes chart geometry for bar, line, area, pie and donut
// charts.
//
// # Overview
//
// chart turns a flat list of (label, value) points into renderer-agnostic
// drawing primitives: rectangles, path segments, arc sectors, circles and
// text labels. It does not draw anything itself. A Scene produced by
// RenderChart can be replayed onto any Backend (see backend/raster and
// backend/svg), or consumed directly by a caller that owns its own surface.
//
// # Quick Start
//
//	import "github.com/gogpu/chart"
//
//	points := []chart.DataPoint{
//	    {Label: "Go", Value: 95},
//	    {Label: "Rust", Value: 10, Color: "#dea584"},
//	}
//	scene, err := chart.RenderChart(points, chart.Pie, chart.DefaultOptions(
//	    chart.WithLegend(true),
//	))
//	if err != nil {
//	    return err
//	}
//	for _, p := range scene.Primitives {
//	    // draw p
//	}
//
// # Pipeline
//
// Every call runs the same three stages:
//   - Normalize: every point gets a color (explicit or palette[i % n])
//   - Layout: exactly one engine selected by ChartType (LayoutFor)
//   - Emit: layout plus label/grid/legend options become primitives
//
// Each stage is a pure function. Nothing is cached between calls and the
// package holds no mutable state apart from the logger, so RenderChart is
// safe for concurrent use.
//
// # Coordinate System
//
// Primitives use a normalized viewBox:
//   - Plot area is [0,100] x [0,100], origin at top-left, Y increases down
//   - The baseline is y = 100
//   - Label and legend rows extend the viewBox below the plot area
//   - Angles are in degrees, 0 points right, increasing clockwise;
//     pie slices start at -90 (12 o'clock)
package chart

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
