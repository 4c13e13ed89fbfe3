package eqed

// Editor holds one document: an ordered list of lines and the cursor into
// them. A document always has at least one line.
//
// Editor is not safe for concurrent use: the intended model is a single
// event loop that applies one mutation per input event and then renders.
// Layout (Render) never mutates the document.
type Editor struct {
	lines  []Sequence
	cursor struct {
		Line  int
		Value Cursor
	}
}

// NewEditor creates an editor holding one empty line, cursor at its start.
func NewEditor() *Editor {
	return &Editor{lines: []Sequence{{}}}
}

// LineCount returns the number of lines in the document.
func (e *Editor) LineCount() int {
	return len(e.lines)
}

// Line returns the sequence forming line i. The returned sequence is the
// editor's own state; callers must treat it as read-only.
func (e *Editor) Line(i int) *Sequence {
	return &e.lines[i]
}

// Cursor returns the current line index and a deep copy of the value
// cursor within that line.
func (e *Editor) Cursor() (line int, value Cursor) {
	return e.cursor.Line, e.cursor.Value.Clone()
}

// InsertText inserts one leaf holding text at the cursor. Consecutive
// calls produce distinct leaves; keystrokes are never merged. The literal
// "/" instead wraps the element left of the cursor into a fraction.
func (e *Editor) InsertText(text string) {
	if text == "/" {
		e.wrapFraction()
		return
	}
	e.lines[e.cursor.Line].insertLeaf(&e.cursor.Value, text)
	e.cursor.Value.advance()
	logger().Debug("eqed: insert leaf", "line", e.cursor.Line, "text", text)
}

// wrapFraction turns the element left of the cursor into a fraction with
// that element as numerator and an empty denominator, then descends the
// cursor into the denominator so typing fills it. No-op when there is
// nothing to the left.
func (e *Editor) wrapFraction() {
	e.lines[e.cursor.Line].wrapFraction(&e.cursor.Value)
	e.cursor.Value.descend()
	logger().Debug("eqed: wrap fraction", "line", e.cursor.Line, "depth", e.cursor.Value.depth())
}

// NewLine splits the current line at the cursor into two lines, moving
// the cursor to the start of the new one. No-op while the cursor is
// inside a fraction.
func (e *Editor) NewLine() {
	if e.cursor.Value.Follow != nil {
		return
	}
	rest := e.lines[e.cursor.Line].splitOff(e.cursor.Value.Index)

	e.cursor.Line++
	e.cursor.Value = Cursor{}

	e.lines = append(e.lines, Sequence{})
	copy(e.lines[e.cursor.Line+1:], e.lines[e.cursor.Line:])
	e.lines[e.cursor.Line] = rest
	logger().Debug("eqed: new line", "line", e.cursor.Line, "lines", len(e.lines))
}

// DeleteBefore removes the element before the cursor. At gap 0 of a
// fraction branch the fraction dissolves into its other branch; at the
// start of a line the line merges into the previous one; at the start of
// the document it is a no-op.
func (e *Editor) DeleteBefore() {
	if e.cursor.Value.Follow == nil && e.cursor.Value.Index == 0 {
		if e.cursor.Line == 0 {
			return
		}
		merged := e.lines[e.cursor.Line]
		e.lines = append(e.lines[:e.cursor.Line], e.lines[e.cursor.Line+1:]...)

		e.cursor.Line--
		prev := &e.lines[e.cursor.Line]
		e.cursor.Value = Cursor{Index: prev.Len()}
		prev.extend(merged)
		logger().Debug("eqed: merge line up", "line", e.cursor.Line)
		return
	}
	e.lines[e.cursor.Line].removeBefore(&e.cursor.Value)
	logger().Debug("eqed: delete before", "line", e.cursor.Line)
}

// DeleteAfter removes the element after the cursor, as MoveRight followed
// by DeleteBefore. At the end of a line it instead merges the next line
// into this one without moving the cursor; at the end of the document it
// is a no-op.
func (e *Editor) DeleteAfter() {
	if e.cursor.Value.Follow == nil && e.cursor.Value.Index == e.lines[e.cursor.Line].Len() {
		if e.cursor.Line+1 < len(e.lines) {
			next := e.lines[e.cursor.Line+1]
			e.lines = append(e.lines[:e.cursor.Line+1], e.lines[e.cursor.Line+2:]...)
			e.lines[e.cursor.Line].extend(next)
			logger().Debug("eqed: merge line down", "line", e.cursor.Line)
		}
		return
	}
	e.MoveRight()
	e.DeleteBefore()
}

// MoveLeft moves the cursor one gap left, entering a fraction from its
// right end when one is adjacent. At the start of a line it moves to the
// end of the previous line.
func (e *Editor) MoveLeft() {
	if e.lines[e.cursor.Line].moveLeft(&e.cursor.Value) {
		if e.cursor.Line > 0 {
			e.cursor.Line--
			e.cursor.Value = Cursor{Index: e.lines[e.cursor.Line].Len()}
		}
	}
}

// MoveRight moves the cursor one gap right, entering a fraction from its
// left end when the step crosses one. Walking off the end of a fraction
// branch steps out of all enclosing fractions at once. At the end of a
// line it moves to the start of the next line.
func (e *Editor) MoveRight() {
	if e.lines[e.cursor.Line].moveRight(&e.cursor.Value) {
		if e.cursor.Line+1 < len(e.lines) {
			e.cursor.Line++
			e.cursor.Value = Cursor{}
		}
	}
}

// MoveUp moves from a denominator into the matching numerator at the
// deepest nesting level, rescaling the index proportionally. Outside any
// fraction it moves to the previous line, clamping the index.
func (e *Editor) MoveUp() {
	if !e.lines[e.cursor.Line].moveVertical(&e.cursor.Value, SideBottom) {
		if e.cursor.Value.Follow == nil && e.cursor.Line > 0 {
			e.cursor.Line--
			e.truncateIndex()
		}
	}
}

// MoveDown is the mirror of MoveUp: numerator to denominator, or next
// line outside any fraction.
func (e *Editor) MoveDown() {
	if !e.lines[e.cursor.Line].moveVertical(&e.cursor.Value, SideTop) {
		if e.cursor.Value.Follow == nil && e.cursor.Line+1 < len(e.lines) {
			e.cursor.Line++
			e.truncateIndex()
		}
	}
}

// truncateIndex clamps the cursor index to the current line's length
// after a line transition.
func (e *Editor) truncateIndex() {
	if n := e.lines[e.cursor.Line].Len(); e.cursor.Value.Index > n {
		e.cursor.Value.Index = n
	}
}
