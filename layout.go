package eqed

import "math"

// Layout turns the document tree into positioned draw primitives. It is
// computed bottom-up: each term yields a fragment (primitives plus their
// combined bounds), sequences fold their terms left to right, fractions
// stack and center their two branches, and the document stacks its lines
// and centers the result in the viewport.
//
// Layout is read-only with respect to the document.

// cursorFragment is the zero-size caret marker at (x, y), where y is the
// vertical center of the gap. Its rect never joins a bounds union.
func cursorFragment(x, y float64) fragment {
	return fragment{
		rect:  RectXYWH(x, y, 0, 0),
		prims: []Primitive{CursorMark{X: x, Y: y}},
	}
}

// layoutTerm lays out one term with its top-left at (x, y). follow is the
// cursor's descending part when the cursor sits immediately after this
// term and resolves inside it, nil otherwise.
func layoutTerm(t *Term, follow *Follow, x, y float64, m Measurer) fragment {
	if t.kind == TermLeaf {
		if follow != nil {
			panic("eqed: cursor follow does not resolve to a fraction")
		}
		w, h := m.MeasureText(t.text)
		return fragment{
			rect:  RectXYWH(x, y, w, h),
			prims: []Primitive{TextRun{X: x, Y: y, Text: t.text}},
		}
	}

	var topCur, bottomCur *Cursor
	if follow != nil {
		if follow.Side == SideTop {
			topCur = &follow.Child
		} else {
			bottomCur = &follow.Child
		}
	}

	top := layoutSequence(&t.top, topCur, x, y, m)
	bottom := layoutSequence(&t.bottom, bottomCur, x, y, m)

	// Center the narrower branch over the wider one.
	var topShiftX, bottomShiftX float64
	if top.rect.Width() < bottom.rect.Width() {
		topShiftX = (bottom.rect.Width() - top.rect.Width()) / 2
	} else {
		bottomShiftX = (top.rect.Width() - bottom.rect.Width()) / 2
	}

	offsetY := math.Max(top.rect.Height(), bottom.rect.Height()) / 2
	top.shift(topShiftX, -offsetY)
	bottom.shift(bottomShiftX, offsetY)

	width := math.Max(top.rect.Width(), bottom.rect.Width())
	lineY := (top.rect.Max.Y + bottom.rect.Min.Y) / 2

	// The divider does not extend the fraction's bounds, same as a
	// cursor mark: the bounds are the union of the two branches.
	frag := fragment{rect: top.rect.Union(bottom.rect)}
	frag.prims = append(frag.prims, top.prims...)
	frag.prims = append(frag.prims, bottom.prims...)
	frag.prims = append(frag.prims, DividerLine{X: x, Y: lineY, Width: width})
	return frag
}

// layoutSequence folds a sequence left to right starting at (x, y),
// accumulating horizontal offset from each prior fragment's width. cur is
// the cursor resolving into this sequence, or nil when the cursor is
// elsewhere. Only the innermost unresolved cursor emits a mark.
func layoutSequence(s *Sequence, cur *Cursor, x, y float64, m Measurer) fragment {
	frag := fragment{rect: RectXYWH(x, y, 0, 0)}

	if cur != nil && cur.Index == 0 && cur.Follow == nil {
		frag = frag.combine(cursorFragment(x, y+m.LineHeight()/2))
	}

	for i := range s.terms {
		atCursor := cur != nil && cur.Index == i+1
		var follow *Follow
		if atCursor {
			follow = cur.Follow
		}

		tf := layoutTerm(&s.terms[i], follow, x+frag.rect.Width(), y, m)
		r := tf.rect
		frag = frag.combine(tf)

		if atCursor && follow == nil {
			frag = frag.combine(cursorFragment(r.Max.X, r.Min.Y+r.Height()/2))
		}
	}
	return frag
}

// Render lays out the whole document, centers it in the viewport and
// invokes emit once per produced primitive with final absolute
// coordinates. A layout whose centered bounds would start left of or
// above the origin is pulled back so the overflowing coordinate is
// exactly 0; it is never pushed away from a positive position.
func (e *Editor) Render(viewportWidth, viewportHeight float64, m Measurer, emit func(Primitive)) {
	var acc fragment
	for i := range e.lines {
		var cur *Cursor
		if i == e.cursor.Line {
			cur = &e.cursor.Value
		}

		y := acc.rect.Max.Y
		lf := layoutSequence(&e.lines[i], cur, 0, y, m)

		// Fractions can rise above the line origin; push the whole line
		// down so it stacks below the previous one.
		lf.shift(0, y-lf.rect.Min.Y)
		acc = acc.combine(lf)
	}

	dx := (viewportWidth-acc.rect.Width())/2 - acc.rect.Min.X
	dy := (viewportHeight-acc.rect.Height())/2 - acc.rect.Min.Y
	acc.shift(dx, dy)

	if acc.rect.Min.Y < 0 {
		acc.shift(0, -acc.rect.Min.Y)
	}
	if acc.rect.Min.X < 0 {
		acc.shift(-acc.rect.Min.X, 0)
	}

	for _, p := range acc.prims {
		emit(p)
	}
}
