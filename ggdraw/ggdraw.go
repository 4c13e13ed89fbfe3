// Package ggdraw consumes eqed draw primitives and renders them onto a
// gogpu/gg drawing context. It is the pixel backend for the editor core:
// text runs go through gg's text package, divider lines and the caret are
// filled rectangles.
package ggdraw

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/eqed"
)

// caretWidth is the caret thickness in pixels.
const caretWidth = 4.0

// Renderer draws editor documents with one font face. It pairs the
// measurement side (Measurer) with the drawing side (Draw) so layout and
// rasterization always agree on glyph geometry.
type Renderer struct {
	face text.Face
}

// New creates a renderer over TTF or OTF font data at the given size in
// points.
func New(fontData []byte, size float64) (*Renderer, error) {
	source, err := text.NewFontSource(fontData)
	if err != nil {
		return nil, fmt.Errorf("ggdraw: load font: %w", err)
	}
	return &Renderer{face: source.Face(size)}, nil
}

// Measurer returns the eqed.Measurer backed by the renderer's font face.
// Pass it to Editor.Render so layout uses the same geometry Draw will.
func (r *Renderer) Measurer() eqed.Measurer {
	return faceMeasurer{face: r.face}
}

// Draw lays the document out against the context's size and draws every
// emitted primitive in the current ink color onto a white background.
func (r *Renderer) Draw(dc *gg.Context, ed *eqed.Editor) {
	dc.ClearWithColor(gg.White)
	dc.SetFont(r.face)
	dc.SetRGB(0, 0, 0)

	metrics := r.face.Metrics()
	ascent := metrics.Ascent
	caretHeight := metrics.LineHeight()

	ed.Render(float64(dc.Width()), float64(dc.Height()), r.Measurer(), func(p eqed.Primitive) {
		switch p := p.(type) {
		case eqed.TextRun:
			// TextRun coordinates are the glyph box top-left;
			// DrawString wants the baseline.
			dc.DrawString(p.Text, p.X, p.Y+ascent)
		case eqed.DividerLine:
			dc.DrawRectangle(p.X, p.Y-1, p.Width, 2)
			_ = dc.Fill()
		case eqed.CursorMark:
			dc.DrawRectangle(p.X, p.Y-caretHeight/2, caretWidth, caretHeight)
			_ = dc.Fill()
		}
	})
}

// RenderPNG draws the document at the given pixel size and writes it to
// path as a PNG.
func (r *Renderer) RenderPNG(ed *eqed.Editor, width, height int, path string) error {
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	r.Draw(dc, ed)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggdraw: save png: %w", err)
	}
	return nil
}

// faceMeasurer adapts a gg text face to the eqed.Measurer contract.
type faceMeasurer struct {
	face text.Face
}

func (m faceMeasurer) MeasureText(s string) (width, height float64) {
	return text.Measure(s, m.face)
}

func (m faceMeasurer) LineHeight() float64 {
	return m.face.Metrics().LineHeight()
}
