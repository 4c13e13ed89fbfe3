package eqed

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin, epsilon) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax, epsilon) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_XYWH(t *testing.T) {
	r := RectXYWH(2, 3, 10, 5)
	if !pointsEqual(r.Min, Pt(2, 3), epsilon) {
		t.Errorf("Min = %v, want (2, 3)", r.Min)
	}
	if r.Width() != 10 {
		t.Errorf("Width() = %v, want 10", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("Height() = %v, want 5", r.Height())
	}
}

func TestRect_Union(t *testing.T) {
	tests := []struct {
		name   string
		r1, r2 Rect
		want   Rect
	}{
		{
			name: "overlapping",
			r1:   RectXYWH(0, 0, 5, 5),
			r2:   RectXYWH(3, 3, 7, 7),
			want: RectXYWH(0, 0, 10, 10),
		},
		{
			name: "disjoint",
			r1:   RectXYWH(0, 0, 2, 2),
			r2:   RectXYWH(8, 9, 2, 2),
			want: RectXYWH(0, 0, 10, 11),
		},
		{
			name: "contained",
			r1:   RectXYWH(0, 0, 10, 10),
			r2:   RectXYWH(4, 4, 1, 1),
			want: RectXYWH(0, 0, 10, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.r1.Union(tt.r2)
			if u != tt.want {
				t.Errorf("Union() = %+v, want %+v", u, tt.want)
			}
			// The union always contains both inputs entirely.
			if !u.ContainsRect(tt.r1) || !u.ContainsRect(tt.r2) {
				t.Errorf("Union() = %+v does not contain both inputs", u)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := RectXYWH(1, 2, 3, 4).Translate(10, -2)
	want := RectXYWH(11, 0, 3, 4)
	if r != want {
		t.Errorf("Translate() = %+v, want %+v", r, want)
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)
	if !r.Contains(Pt(5, 5)) {
		t.Error("Contains(5,5) = false, want true")
	}
	if !r.Contains(Pt(0, 10)) {
		t.Error("Contains(0,10) = false, want true (edges inclusive)")
	}
	if r.Contains(Pt(11, 5)) {
		t.Error("Contains(11,5) = true, want false")
	}
}
