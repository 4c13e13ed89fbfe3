package eqed

// Side selects a fraction branch.
type Side int

const (
	// SideTop is the numerator.
	SideTop Side = iota

	// SideBottom is the denominator.
	SideBottom
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideTop {
		return SideBottom
	}
	return SideTop
}

// String returns "top" or "bottom".
func (s Side) String() string {
	if s == SideTop {
		return "top"
	}
	return "bottom"
}

// Cursor is a recursive position descriptor into a Sequence.
//
// Index is a gap position in the current sequence, between elements,
// in the range [0, Len]. Index 0 is before the first element.
//
// If Follow is non-nil the cursor delegates downward: the element at
// Index-1 must be a fraction, Follow.Side selects its branch, and
// Follow.Child is the position within that branch. A follow can only
// exist when Index >= 1; a cursor descends exclusively through the
// fraction immediately to its left.
type Cursor struct {
	Index  int
	Follow *Follow
}

// Follow is the descending part of a cursor.
type Follow struct {
	Side  Side
	Child Cursor
}

// Clone returns a deep copy of the cursor.
func (c Cursor) Clone() Cursor {
	out := Cursor{Index: c.Index}
	if c.Follow != nil {
		out.Follow = &Follow{Side: c.Follow.Side, Child: c.Follow.Child.Clone()}
	}
	return out
}

// Equal reports whether two cursors describe the same position.
func (c Cursor) Equal(other Cursor) bool {
	if c.Index != other.Index {
		return false
	}
	if (c.Follow == nil) != (other.Follow == nil) {
		return false
	}
	if c.Follow == nil {
		return true
	}
	return c.Follow.Side == other.Follow.Side && c.Follow.Child.Equal(other.Follow.Child)
}

// innermost returns the deepest cursor in the follow chain.
func (c *Cursor) innermost() *Cursor {
	for c.Follow != nil {
		c = &c.Follow.Child
	}
	return c
}

// advance moves the innermost cursor one gap to the right, after an
// insertion at that depth. Ancestor indices are untouched.
func (c *Cursor) advance() {
	c.innermost().Index++
}

// descend attaches a follow into the denominator of the fraction the
// innermost cursor just created. No-op at gap 0, where wrapping is
// itself a no-op.
func (c *Cursor) descend() {
	c = c.innermost()
	if c.Index != 0 {
		c.Follow = &Follow{Side: SideBottom}
	}
}

// depth returns the number of follows in the chain. Useful for
// diagnostics and tests.
func (c *Cursor) depth() int {
	n := 0
	for c.Follow != nil {
		n++
		c = &c.Follow.Child
	}
	return n
}
