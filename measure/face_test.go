package measure

import (
	"errors"
	"testing"
)

func TestNewFace_EmptyData(t *testing.T) {
	if _, err := NewFace(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFace(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFace_BadData(t *testing.T) {
	if _, err := NewFace([]byte("not a font")); err == nil {
		t.Error("NewFace(garbage) succeeded, want parse error")
	}
}

func TestDefaultFace(t *testing.T) {
	f, err := DefaultFace()
	if err != nil {
		t.Fatalf("DefaultFace() error = %v", err)
	}

	if f.Size() != 20 {
		t.Errorf("Size() = %v, want default 20", f.Size())
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %v, want > 0", f.LineHeight())
	}
	if f.Ascent() <= 0 || f.Ascent() >= f.LineHeight() {
		t.Errorf("Ascent() = %v, want in (0, %v)", f.Ascent(), f.LineHeight())
	}

	if w, h := f.MeasureText(""); w != 0 || h != 0 {
		t.Errorf("MeasureText(\"\") = (%v, %v), want (0, 0)", w, h)
	}

	w1, h1 := f.MeasureText("1")
	w11, _ := f.MeasureText("11")
	if w1 <= 0 {
		t.Errorf("width(1) = %v, want > 0", w1)
	}
	if w11 <= w1 {
		t.Errorf("width(11) = %v not wider than width(1) = %v", w11, w1)
	}
	if h1 != f.LineHeight() {
		t.Errorf("height = %v, want line height %v", h1, f.LineHeight())
	}
}

func TestFace_WithSize(t *testing.T) {
	small, err := DefaultFace(WithSize(10))
	if err != nil {
		t.Fatalf("DefaultFace(WithSize(10)) error = %v", err)
	}
	big, err := DefaultFace(WithSize(40))
	if err != nil {
		t.Fatalf("DefaultFace(WithSize(40)) error = %v", err)
	}

	ws, _ := small.MeasureText("x")
	wb, _ := big.MeasureText("x")
	if wb <= ws {
		t.Errorf("width at 40pt = %v not wider than at 10pt = %v", wb, ws)
	}
	if big.LineHeight() <= small.LineHeight() {
		t.Errorf("line height at 40pt = %v not taller than at 10pt = %v",
			big.LineHeight(), small.LineHeight())
	}
}
