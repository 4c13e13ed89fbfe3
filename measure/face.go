package measure

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned when NewFace is given no font bytes.
var ErrEmptyFontData = errors.New("measure: empty font data")

// Face measures text by shaping it with a real OpenType font at a fixed
// size. Widths are true shaped advances (kerning and ligatures included),
// heights are the font's line height, so layouts agree with what a glyph
// rasterizer will draw.
//
// Face is safe for concurrent use.
type Face struct {
	font *font.Font
	size float64

	ascent  float64
	descent float64
	lineGap float64

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is NOT safe for concurrent use, but
	// reusing instances across sequential calls is efficient.
	shaperPool sync.Pool
}

// NewFace parses TTF or OTF font data and returns a measurer at the
// configured size (default 20 points). The data slice is not retained.
func NewFace(data []byte, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// ParseTTF returns a *font.Face which embeds the thread-safe *Font;
	// the Face itself is not concurrent-safe, so only the Font is kept.
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("measure: parse font: %w", err)
	}

	f := &Face{
		font: parsed.Font,
		size: cfg.size,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}

	// Line metrics come from the shaper, scaled to the face size. Any
	// non-empty reference text produces the same line bounds.
	ref := f.shape("Mg")
	f.ascent = fixedToFloat(ref.LineBounds.Ascent)
	f.descent = -fixedToFloat(ref.LineBounds.Descent) // stored positive
	f.lineGap = fixedToFloat(ref.LineBounds.Gap)

	return f, nil
}

// DefaultFace returns a Face over the embedded Go Regular font, so the
// module works with zero font assets on disk.
func DefaultFace(opts ...Option) (*Face, error) {
	return NewFace(goregular.TTF, opts...)
}

// MeasureText implements eqed.Measurer. Width is the shaped horizontal
// advance, height is the face's line height.
func (f *Face) MeasureText(text string) (width, height float64) {
	if text == "" {
		return 0, 0
	}
	out := f.shape(text)
	return fixedToFloat(out.Advance), f.LineHeight()
}

// LineHeight implements eqed.Measurer: ascent + descent + line gap.
func (f *Face) LineHeight() float64 {
	return f.ascent + f.descent + f.lineGap
}

// Ascent returns the distance from the line top to the baseline,
// which drawing backends need to place baselines under top-aligned
// text runs.
func (f *Face) Ascent() float64 {
	return f.ascent
}

// Size returns the face size in points.
func (f *Face) Size() float64 {
	return f.size
}

// shape runs HarfBuzz shaping over text as a single left-to-right run.
func (f *Face) shape(text string) shaping.Output {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is not concurrent-safe; NewFace is cheap, it wraps
		// the thread-safe *Font and initializes glyph caches.
		Face:     font.NewFace(f.font),
		Size:     floatToFixed(f.size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	shaper := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	f.shaperPool.Put(shaper)
	return out
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text the first run wins; leaves
// hold single keystrokes, so that is what occurs in practice.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
