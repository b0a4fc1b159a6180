// Command ggchart renders a chart from a JSON dataset.
//
// The input is an array of points:
//
//	[{"label": "Go", "value": 95}, {"label": "Rust", "value": 10, "color": "#dea584"}]
//
// Usage:
//
//	ggchart -type pie -legend -values -output langs.png data.json
//	cat data.json | ggchart -type bar -format svg > bars.svg
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/gogpu/chart"
	_ "github.com/gogpu/chart/backend/raster"
	_ "github.com/gogpu/chart/backend/svg"
)

type config struct {
	chartType string
	width     int
	height    int
	labels    bool
	values    bool
	grid      bool
	legend    bool
	format    string
	output    string
	locale    string
	verbose   bool
	input     string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.chartType, "type", "bar", "chart type: bar, line, area, pie, donut")
	flag.IntVar(&cfg.width, "width", 800, "image width")
	flag.IntVar(&cfg.height, "height", 300, "image height")
	flag.BoolVar(&cfg.labels, "labels", false, "show category labels")
	flag.BoolVar(&cfg.values, "values", false, "show values")
	flag.BoolVar(&cfg.grid, "grid", false, "show gridlines (bar, line, area)")
	flag.BoolVar(&cfg.legend, "legend", false, "show legend")
	flag.StringVar(&cfg.format, "format", "", "output format: png or svg (default from -output extension, else png)")
	flag.StringVar(&cfg.output, "output", "", "output file (default stdout)")
	flag.StringVar(&cfg.locale, "locale", "en", "locale for value labels (BCP 47)")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	flag.Parse()
	cfg.input = flag.Arg(0)

	if cfg.verbose {
		chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("ggchart: %v", err)
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	typ, err := chart.ParseChartType(cfg.chartType)
	if err != nil {
		return err
	}
	tag, err := language.Parse(cfg.locale)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", cfg.locale, err)
	}

	points, err := readPoints(cfg.input, stdin)
	if err != nil {
		return err
	}

	scene, err := chart.RenderChart(points, typ, chart.DefaultOptions(
		chart.WithSize(cfg.width, cfg.height),
		chart.WithLabels(cfg.labels),
		chart.WithValues(cfg.values),
		chart.WithGrid(cfg.grid),
		chart.WithLegend(cfg.legend),
		chart.WithLocale(tag),
	))
	if err != nil {
		return fmt.Errorf("render %s chart: %w", typ, err)
	}

	backend, err := newBackend(outputFormat(cfg))
	if err != nil {
		return err
	}
	if err := scene.Playback(backend); err != nil {
		return err
	}

	if cfg.output == "" {
		_, err := backend.WriteTo(stdout)
		return err
	}
	return backend.SaveToFile(cfg.output)
}

// outputBackend is what run needs from a backend.
type outputBackend interface {
	chart.WriterBackend
	chart.FileBackend
}

// formats maps output formats to registered backend names.
var formats = map[string]string{
	"png": "raster",
	"svg": "svg",
}

func newBackend(format string) (outputBackend, error) {
	name, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	b, err := chart.NewBackend(name)
	if err != nil {
		return nil, err
	}
	out, ok := b.(outputBackend)
	if !ok {
		return nil, fmt.Errorf("backend %q cannot write %s output", name, format)
	}
	return out, nil
}

func outputFormat(cfg config) string {
	if cfg.format != "" {
		return strings.ToLower(cfg.format)
	}
	if strings.EqualFold(filepath.Ext(cfg.output), ".svg") {
		return "svg"
	}
	return "png"
}

// readPoints decodes the dataset from path, or from stdin when path is
// empty or "-".
func readPoints(path string, stdin io.Reader) ([]chart.DataPoint, error) {
	r := stdin
	if path != "" && path != "-" {
		// #nosec G304 -- input path is provided by the user
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer f.Close()
		r = f
	}

	var points []chart.DataPoint
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode dataset: empty input")
		}
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return points, nil
}
