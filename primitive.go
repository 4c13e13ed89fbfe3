package eqed

// Primitive is one renderable element produced by a layout pass.
// It is a closed set: TextRun, DividerLine and CursorMark are the only
// implementations. All coordinates are absolute once Render has emitted
// the primitive.
type Primitive interface {
	// shifted returns the primitive translated by (dx, dy).
	shifted(dx, dy float64) Primitive

	// private prevents external implementation
	private()
}

// TextRun draws the text of a single leaf with its top-left corner at (X, Y).
type TextRun struct {
	X, Y float64
	Text string
}

// DividerLine draws a horizontal fraction bar starting at (X, Y) and
// extending Width to the right. Y is the vertical center of the bar;
// the bar's thickness is the drawing backend's concern.
type DividerLine struct {
	X, Y, Width float64
}

// CursorMark marks the caret position. It is zero-size: (X, Y) is the
// vertical center of the gap the cursor occupies, and the drawing backend
// renders a fixed-size caret around it. A CursorMark never contributes to
// layout bounds.
type CursorMark struct {
	X, Y float64
}

func (t TextRun) shifted(dx, dy float64) Primitive {
	t.X += dx
	t.Y += dy
	return t
}

func (l DividerLine) shifted(dx, dy float64) Primitive {
	l.X += dx
	l.Y += dy
	return l
}

func (c CursorMark) shifted(dx, dy float64) Primitive {
	c.X += dx
	c.Y += dy
	return c
}

func (TextRun) private()     {}
func (DividerLine) private() {}
func (CursorMark) private()  {}

// fragment pairs a list of primitives with their combined bounding
// rectangle. Layout builds the document bottom-up out of fragments.
type fragment struct {
	rect  Rect
	prims []Primitive
}

// isCursor reports whether the fragment holds nothing but a single cursor
// mark. Such fragments are excluded from bounding-rectangle unions so the
// caret can never grow the visible layout.
func (f fragment) isCursor() bool {
	if len(f.prims) != 1 {
		return false
	}
	_, ok := f.prims[0].(CursorMark)
	return ok
}

// combine merges other into f: primitives are concatenated and the
// bounding rectangles are unioned, unless other is cursor-only.
func (f fragment) combine(other fragment) fragment {
	if !other.isCursor() {
		f.rect = f.rect.Union(other.rect)
	}
	f.prims = append(f.prims, other.prims...)
	return f
}

// shift translates the fragment, rectangle and primitives together.
func (f *fragment) shift(dx, dy float64) {
	f.rect = f.rect.Translate(dx, dy)
	for i, p := range f.prims {
		f.prims[i] = p.shifted(dx, dy)
	}
}
