package raster

import (
	"bytes"
	"image"
	"image/draw"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/chart"
)

// textRenderer draws labels with Go Regular. Glyphs are rasterized by
// x/image/font/opentype; label widths come from HarfBuzz shaping so
// anchoring accounts for kerning.
//
// Not safe for concurrent use; each Backend owns one.
type textRenderer struct {
	sfnt   *opentype.Font
	shaped *gotext.Font
	shaper shaping.HarfbuzzShaper
	faces  map[float64]font.Face
}

func newTextRenderer() (*textRenderer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := gotext.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &textRenderer{
		sfnt:   f,
		shaped: face.Font,
		faces:  make(map[float64]font.Face),
	}, nil
}

// face returns the rasterizing face for size, creating it on first use.
func (t *textRenderer) face(size float64) (font.Face, error) {
	if f, ok := t.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(t.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	t.faces[size] = f
	return f, nil
}

// measure returns the shaped advance width of s in pixels.
func (t *textRenderer) measure(s string, size float64) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(t.shaped),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := t.shaper.Shape(input)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64
}

// draw renders s so that (x, y) is the anchor point given by style.
func (t *textRenderer) draw(dst draw.Image, s string, x, y float64, style chart.TextStyle) {
	size := style.Size
	if size <= 0 {
		size = chart.DefaultTextSize
	}
	face, err := t.face(size)
	if err != nil {
		chart.Logger().Warn("raster: font face unavailable", "size", size, "err", err)
		return
	}

	w := t.measure(s, size)
	switch style.Anchor {
	case chart.AnchorMiddle:
		x -= w / 2
	case chart.AnchorEnd:
		x -= w
	}

	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	switch style.Baseline {
	case chart.BaselineBottom:
		y -= descent
	case chart.BaselineMiddle:
		y += (ascent - descent) / 2
	case chart.BaselineTop:
		y += ascent
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.Fill.Resolve().Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
