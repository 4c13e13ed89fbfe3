package eqed

// Measurer supplies the text geometry the layout pass needs. The core
// never measures text itself: leaf sizes and the nominal line height come
// in through this collaborator contract.
//
// Render may measure the same leaf more than once across a full redraw
// cycle; implementations should be cheap or memoized (see measure.Cached).
type Measurer interface {
	// MeasureText returns the bounding size of one leaf's text.
	MeasureText(text string) (width, height float64)

	// LineHeight returns the nominal height of one line. It centers the
	// caret on gaps that have no element beside them to take a height
	// from.
	LineHeight() float64
}
