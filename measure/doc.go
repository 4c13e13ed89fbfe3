// Package measure provides eqed.Measurer implementations.
//
// Face measures text through real OpenType shaping (HarfBuzz via
// go-text/typesetting) and is what pixel-based frontends want. Cell
// counts terminal cells and is what text-mode frontends want. Cached
// wraps any measurer with memoization, since a frontend may lay the same
// document out more than once per redraw cycle.
package measure
