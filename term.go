package eqed

// TermKind discriminates the two shapes a Term can take.
// The set is closed: the document model knows leaves and fractions only.
type TermKind int

const (
	// TermLeaf is a plain text element.
	TermLeaf TermKind = iota

	// TermFraction is an element holding two nested sequences,
	// numerator (top) and denominator (bottom).
	TermFraction
)

// Term is one element of a sequence: either a text leaf or a fraction.
// The zero Term is the empty leaf, which doubles as the benign placeholder
// used when a value is swapped out of a sequence slot in place.
type Term struct {
	kind   TermKind
	text   string
	top    Sequence
	bottom Sequence
}

// NewLeaf creates a leaf term.
func NewLeaf(text string) Term {
	return Term{kind: TermLeaf, text: text}
}

// NewFraction creates a fraction term owning the given branches.
func NewFraction(top, bottom Sequence) Term {
	return Term{kind: TermFraction, top: top, bottom: bottom}
}

// Kind returns the term's shape.
func (t Term) Kind() TermKind {
	return t.kind
}

// Text returns the leaf payload. It is empty for fractions.
func (t Term) Text() string {
	return t.text
}

// Top returns the numerator branch of a fraction term.
func (t *Term) Top() *Sequence {
	return &t.top
}

// Bottom returns the denominator branch of a fraction term.
func (t *Term) Bottom() *Sequence {
	return &t.bottom
}

// branch selects a fraction branch by side.
// Panics if the term is not a fraction: a cursor follow that does not
// resolve to a fraction is an internal invariant failure.
func (t *Term) branch(s Side) *Sequence {
	if t.kind != TermFraction {
		panic("eqed: cursor follow does not resolve to a fraction")
	}
	if s == SideTop {
		return &t.top
	}
	return &t.bottom
}

// Equal reports structural equality of two terms.
func (t Term) Equal(other Term) bool {
	if t.kind != other.kind {
		return false
	}
	if t.kind == TermLeaf {
		return t.text == other.text
	}
	return t.top.Equal(other.top) && t.bottom.Equal(other.bottom)
}

// Sequence is an ordered list of terms: one editable line, numerator or
// denominator. A sequence may be empty.
type Sequence struct {
	terms []Term
}

// NewSequence creates a sequence from the given terms.
func NewSequence(terms ...Term) Sequence {
	return Sequence{terms: terms}
}

// Len returns the number of terms in the sequence.
func (s *Sequence) Len() int {
	return len(s.terms)
}

// Term returns the term at index i.
func (s *Sequence) Term(i int) *Term {
	return &s.terms[i]
}

// Equal reports structural equality of two sequences.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.terms) != len(other.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(other.terms[i]) {
			return false
		}
	}
	return true
}

// insert places t at gap position i, shifting later terms right.
func (s *Sequence) insert(i int, t Term) {
	s.terms = append(s.terms, Term{})
	copy(s.terms[i+1:], s.terms[i:])
	s.terms[i] = t
}

// remove deletes the term at index i.
func (s *Sequence) remove(i int) {
	s.terms = append(s.terms[:i], s.terms[i+1:]...)
}

// splice replaces the term at index i with the contents of values,
// preserving their order.
func (s *Sequence) splice(i int, values Sequence) {
	rest := append(values.terms, s.terms[i+1:]...)
	s.terms = append(s.terms[:i], rest...)
}

// splitOff removes and returns the tail of the sequence starting at i.
func (s *Sequence) splitOff(i int) Sequence {
	tail := make([]Term, len(s.terms)-i)
	copy(tail, s.terms[i:])
	s.terms = s.terms[:i]
	return Sequence{terms: tail}
}

// extend appends the contents of other.
func (s *Sequence) extend(other Sequence) {
	s.terms = append(s.terms, other.terms...)
}
