package eqed

import "testing"

func TestPrimitive_Shifted(t *testing.T) {
	tests := []struct {
		name string
		in   Primitive
		want Primitive
	}{
		{
			name: "text run",
			in:   TextRun{X: 1, Y: 2, Text: "a"},
			want: TextRun{X: 4, Y: -3, Text: "a"},
		},
		{
			name: "divider line",
			in:   DividerLine{X: 1, Y: 2, Width: 7},
			want: DividerLine{X: 4, Y: -3, Width: 7},
		},
		{
			name: "cursor mark",
			in:   CursorMark{X: 1, Y: 2},
			want: CursorMark{X: 4, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.shifted(3, -5); got != tt.want {
				t.Errorf("shifted(3,-5) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFragment_CombineUnionsBounds(t *testing.T) {
	a := fragment{
		rect:  RectXYWH(0, 0, 5, 5),
		prims: []Primitive{TextRun{Text: "a"}},
	}
	b := fragment{
		rect:  RectXYWH(5, 0, 5, 8),
		prims: []Primitive{TextRun{X: 5, Text: "b"}},
	}

	c := a.combine(b)
	if want := RectXYWH(0, 0, 10, 8); c.rect != want {
		t.Errorf("combined rect = %+v, want %+v", c.rect, want)
	}
	if len(c.prims) != 2 {
		t.Errorf("combined prims = %d, want 2", len(c.prims))
	}
}

func TestFragment_CombineExcludesCursor(t *testing.T) {
	a := fragment{
		rect:  RectXYWH(0, 0, 5, 5),
		prims: []Primitive{TextRun{Text: "a"}},
	}
	// A cursor mark far outside must not grow the bounds.
	c := a.combine(cursorFragment(100, 100))
	if want := RectXYWH(0, 0, 5, 5); c.rect != want {
		t.Errorf("combined rect = %+v, want %+v", c.rect, want)
	}
	if len(c.prims) != 2 {
		t.Errorf("combined prims = %d, want 2", len(c.prims))
	}

	// A fragment with a cursor among other primitives still counts.
	d := c.combine(fragment{
		rect:  RectXYWH(0, 0, 20, 5),
		prims: []Primitive{TextRun{Text: "b"}, CursorMark{X: 20}},
	})
	if want := RectXYWH(0, 0, 20, 5); d.rect != want {
		t.Errorf("combined rect = %+v, want %+v", d.rect, want)
	}
}

func TestFragment_Shift(t *testing.T) {
	f := fragment{
		rect:  RectXYWH(1, 1, 2, 2),
		prims: []Primitive{TextRun{X: 1, Y: 1, Text: "a"}, CursorMark{X: 3, Y: 2}},
	}
	f.shift(10, 20)

	if want := RectXYWH(11, 21, 2, 2); f.rect != want {
		t.Errorf("rect = %+v, want %+v", f.rect, want)
	}
	if want := (TextRun{X: 11, Y: 21, Text: "a"}); f.prims[0] != want {
		t.Errorf("prims[0] = %+v, want %+v", f.prims[0], want)
	}
	if want := (CursorMark{X: 13, Y: 22}); f.prims[1] != want {
		t.Errorf("prims[1] = %+v, want %+v", f.prims[1], want)
	}
}
