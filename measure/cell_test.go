package measure

import "testing"

func TestCell_MeasureText(t *testing.T) {
	c := NewCell(1, 2)

	tests := []struct {
		name       string
		text       string
		wantWidth  float64
		wantHeight float64
	}{
		{"empty", "", 0, 0},
		{"ascii", "a", 1, 2},
		{"multi rune", "abc", 3, 2},
		{"east asian wide", "界", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := c.MeasureText(tt.text)
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("MeasureText(%q) = (%v, %v), want (%v, %v)",
					tt.text, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestCell_Scaling(t *testing.T) {
	c := NewCell(8, 16)
	w, h := c.MeasureText("ab")
	if w != 16 || h != 16 {
		t.Errorf("MeasureText(ab) = (%v, %v), want (16, 16)", w, h)
	}
	if c.LineHeight() != 16 {
		t.Errorf("LineHeight() = %v, want 16", c.LineHeight())
	}
}
