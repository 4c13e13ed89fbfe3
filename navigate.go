package eqed

// Navigation and mutation over a sequence and a cursor referring into it.
// Every operation recurses the two structures together: while the cursor
// has a follow, the element left of it must be a fraction and the
// operation continues inside the selected branch. Only the innermost
// level acts.

// resolve walks the follow chain and returns the innermost sequence and
// cursor pair, the pair at which the cursor actually sits.
func (s *Sequence) resolve(c *Cursor) (*Sequence, *Cursor) {
	for c.Follow != nil {
		s = s.terms[c.Index-1].branch(c.Follow.Side)
		c = &c.Follow.Child
	}
	return s, c
}

// insertLeaf inserts a new leaf at the cursor's resolved gap. The caller
// advances the cursor afterwards; tree and cursor always mutate in
// lock-step.
func (s *Sequence) insertLeaf(c *Cursor, text string) {
	seq, cur := s.resolve(c)
	seq.insert(cur.Index, NewLeaf(text))
}

// wrapFraction replaces the element left of the cursor's resolved gap with
// a fraction whose numerator is that element and whose denominator is
// empty. No-op at gap 0, where there is nothing to wrap.
func (s *Sequence) wrapFraction(c *Cursor) {
	seq, cur := s.resolve(c)
	if cur.Index == 0 {
		return
	}
	i := cur.Index - 1
	seq.terms[i] = NewFraction(NewSequence(seq.terms[i]), NewSequence())
}

// removeBefore deletes the element before the cursor at its resolved
// depth. Deleting at gap 0 of a fraction branch dissolves the fraction:
// the branch not holding the cursor is spliced into the parent sequence in
// the fraction's place, the cursor's follow is cleared and its index is
// placed immediately after the spliced run. For a single-element survivor
// that equals the index the cursor already had; for an empty survivor it
// steps back onto the vacated position, keeping the index in range.
//
// The return value asks the caller to dissolve the enclosing structure; it
// is true only when the cursor sat at gap 0 of this sequence. The signal
// never travels more than one level: the level that dissolves returns
// false.
func (s *Sequence) removeBefore(c *Cursor) bool {
	if c.Follow != nil {
		i := c.Index - 1
		frac := &s.terms[i]
		if frac.branch(c.Follow.Side).removeBefore(&c.Follow.Child) {
			survivor := *frac.branch(c.Follow.Side.Opposite())
			s.splice(i, survivor)
			c.Index = i + survivor.Len()
			c.Follow = nil
		}
		return false
	}
	if c.Index > 0 {
		c.Index--
		s.remove(c.Index)
		return false
	}
	return true
}

// stepIn tries to enter the fraction immediately left of the cursor's
// resolved gap instead of stepping over it. Entering from the right
// places the child cursor at the numerator's rightmost gap; entering from
// the left at its leftmost.
func (s *Sequence) stepIn(c *Cursor, fromRight bool) bool {
	seq, cur := s.resolve(c)
	if cur.Index == 0 {
		return false
	}
	t := &seq.terms[cur.Index-1]
	if t.kind != TermFraction {
		return false
	}
	idx := 0
	if fromRight {
		idx = t.top.Len()
	}
	cur.Follow = &Follow{Side: SideTop, Child: Cursor{Index: idx}}
	return true
}

// moveLeft moves one gap left, preferring to enter a fraction from its
// right end over stepping past it. Returns true when the cursor was
// already at the leftmost gap of the outermost sequence, so the caller
// can move to the previous line.
func (s *Sequence) moveLeft(c *Cursor) bool {
	if s.stepIn(c, true) {
		return false
	}
	return s.moveLeftInner(c)
}

func (s *Sequence) moveLeftInner(c *Cursor) bool {
	if c.Follow != nil {
		child := s.terms[c.Index-1].branch(c.Follow.Side)
		if child.moveLeftInner(&c.Follow.Child) {
			// Walked out the left side of the fraction. The index still
			// points just past it, so retry the step at this level to
			// land immediately before it.
			c.Follow = nil
			s.moveLeftInner(c)
		}
		return false
	}
	if c.Index > 0 {
		c.Index--
		return false
	}
	return true
}

// moveRight moves one gap right, entering a fraction from its left end
// when the step crosses one. Walking off the right end of a branch steps
// out of every enclosing fraction at once, landing just past the
// outermost one. Returns true only when a cursor without any follow was
// already at the rightmost gap, so the caller can move to the next line.
func (s *Sequence) moveRight(c *Cursor) bool {
	hadFollow := c.Follow != nil
	if s.moveRightInner(c) {
		return !hadFollow
	}
	return false
}

func (s *Sequence) moveRightInner(c *Cursor) bool {
	if c.Follow != nil {
		child := s.terms[c.Index-1].branch(c.Follow.Side)
		if child.moveRightInner(&c.Follow.Child) {
			// Walked off the end of the branch. The index at this level
			// already points just past the fraction, so dropping the
			// follow completes the step here; returning the signal keeps
			// clearing ancestors until the whole chain is gone.
			c.Follow = nil
			return true
		}
		return false
	}
	if c.Index < len(s.terms) {
		c.Index++
		s.stepIn(c, false)
		return false
	}
	return true
}

// moveVertical implements vertical movement inside fractions. from is the
// side being left: SideBottom for an upward move, SideTop for a downward
// one. The move only acts at the deepest nesting level; above it the walk
// recurses with the same direction. At the deepest level the follow flips
// to the opposite branch and the child index rescales proportionally:
// with a the length of the sequence being left and b the length of the
// one being entered, the new index is clamp(old - (a-b)/2, 0, b) in
// truncating integer arithmetic.
//
// Returns whether a flip occurred. Without any follow there is nothing to
// flip and the caller handles the move as a line transition.
func (s *Sequence) moveVertical(c *Cursor, from Side) bool {
	if c.Follow == nil {
		return false
	}
	t := &s.terms[c.Index-1]
	follow := c.Follow
	if follow.Child.Follow != nil {
		return t.branch(follow.Side).moveVertical(&follow.Child, from)
	}
	if follow.Side != from {
		return false
	}
	a := t.branch(from).Len()
	b := t.branch(from.Opposite()).Len()
	follow.Side = from.Opposite()
	idx := follow.Child.Index - (a-b)/2
	if idx < 0 {
		idx = 0
	}
	if idx > b {
		idx = b
	}
	follow.Child.Index = idx
	return true
}
