package chart

import (
	"errors"
	"testing"
)

func TestPlayback_ReplaysEveryPrimitive(t *testing.T) {
	points := []DataPoint{{Label: "a", Value: 1}, {Label: "b", Value: 3}}
	s, err := RenderChart(points, Pie, DefaultOptions(WithLabels(true), WithLegend(true), WithSize(400, 300)))
	if err != nil {
		t.Fatal(err)
	}

	b := newMockBackend("mock")
	if err := s.Playback(b); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	if b.beginCalls != 1 || b.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", b.beginCalls, b.endCalls)
	}
	if b.width != 400 || b.height != 300 {
		t.Errorf("surface = %dx%d, want 400x300", b.width, b.height)
	}
	if got := b.count("sector"); got != 2 {
		t.Errorf("sectors = %d, want 2", got)
	}
	if got := b.count("rect"); got != 2 {
		t.Errorf("legend swatches = %d, want 2", got)
	}
	if got := b.count("text"); got != 4 {
		t.Errorf("texts = %d, want 4", got)
	}
}

func TestPlayback_DefaultWidth(t *testing.T) {
	s, _ := RenderChart([]DataPoint{{Value: 1}}, Bar, DefaultOptions())
	b := newMockBackend("mock")
	if err := s.Playback(b); err != nil {
		t.Fatal(err)
	}
	if b.width != DefaultWidth || b.height != 300 {
		t.Errorf("surface = %dx%d, want %dx300", b.width, b.height, DefaultWidth)
	}
}

func TestPlayback_SkipsFlatBars(t *testing.T) {
	s, _ := RenderChart([]DataPoint{{Value: -1}, {Value: 0}}, Bar, DefaultOptions())
	if s.Count(KindRect) != 2 {
		t.Fatalf("scene rects = %d, want 2", s.Count(KindRect))
	}
	b := newMockBackend("mock")
	if err := s.Playback(b); err != nil {
		t.Fatal(err)
	}
	if got := b.count("rect"); got != 0 {
		t.Errorf("backend rects = %d, want 0 for zero-height bars", got)
	}
}

func TestPlayback_AreaFillsAndStrokes(t *testing.T) {
	s, _ := RenderChart([]DataPoint{{Value: 1}, {Value: 2}}, Area, DefaultOptions(WithGrid(true)))
	b := newMockBackend("mock")
	if err := s.Playback(b); err != nil {
		t.Fatal(err)
	}
	if got := b.count("fill"); got != 1 {
		t.Errorf("fills = %d, want 1", got)
	}
	if got := b.count("stroke"); got != len(gridLines)+1 {
		t.Errorf("strokes = %d, want gridlines + outline", got)
	}
}

func TestPlayback_Errors(t *testing.T) {
	s, _ := RenderChart([]DataPoint{{Value: 1}}, Bar, DefaultOptions())
	if err := s.Playback(nil); !errors.Is(err, ErrNilBackend) {
		t.Errorf("Playback(nil) = %v, want ErrNilBackend", err)
	}

	boom := errors.New("boom")
	b := newMockBackend("mock")
	b.beginErr = boom
	if err := s.Playback(b); !errors.Is(err, boom) {
		t.Errorf("Playback() = %v, want wrapped begin error", err)
	}
	if b.endCalls != 0 {
		t.Error("End called after failed Begin")
	}
}
