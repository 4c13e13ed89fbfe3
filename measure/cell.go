package measure

import "github.com/mattn/go-runewidth"

// Cell measures text in terminal cells: a string is as wide as the cells
// it occupies (East Asian wide runes count as two) scaled by the cell
// size. Terminal frontends use NewCell(1, h) and work in cell
// coordinates directly.
type Cell struct {
	cellWidth  float64
	cellHeight float64
}

// NewCell creates a cell measurer with the given cell size.
func NewCell(cellWidth, cellHeight float64) Cell {
	return Cell{cellWidth: cellWidth, cellHeight: cellHeight}
}

// MeasureText implements eqed.Measurer.
func (c Cell) MeasureText(text string) (width, height float64) {
	if text == "" {
		return 0, 0
	}
	return float64(runewidth.StringWidth(text)) * c.cellWidth, c.cellHeight
}

// LineHeight implements eqed.Measurer.
func (c Cell) LineHeight() float64 {
	return c.cellHeight
}
