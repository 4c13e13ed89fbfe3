package measure

import (
	"sync"

	"github.com/gogpu/eqed"
)

// Cached memoizes another measurer. A frontend may lay the same document
// out more than once per redraw cycle (a measurement pass and a draw
// pass), so each distinct leaf text is measured at most once.
//
// Cached is safe for concurrent use. It never evicts; leaves are single
// keystrokes, so the key space stays small.
type Cached struct {
	m eqed.Measurer

	mu    sync.RWMutex
	sizes map[string][2]float64
}

// NewCached wraps m with memoization.
func NewCached(m eqed.Measurer) *Cached {
	return &Cached{m: m, sizes: make(map[string][2]float64)}
}

// MeasureText implements eqed.Measurer.
func (c *Cached) MeasureText(text string) (width, height float64) {
	c.mu.RLock()
	s, ok := c.sizes[text]
	c.mu.RUnlock()
	if ok {
		return s[0], s[1]
	}

	width, height = c.m.MeasureText(text)

	c.mu.Lock()
	c.sizes[text] = [2]float64{width, height}
	c.mu.Unlock()
	return width, height
}

// LineHeight implements eqed.Measurer.
func (c *Cached) LineHeight() float64 {
	return c.m.LineHeight()
}
