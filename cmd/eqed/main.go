// Command eqed is an interactive terminal equation editor.
//
// Type to insert characters, "/" to wrap the element left of the cursor
// into a fraction (the cursor lands in the denominator), Enter to split
// the line, Backspace/Delete to remove around the cursor, and the arrow
// keys to move — including in and out of fractions. Esc or Ctrl-C quits.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/eqed"
	"github.com/gogpu/eqed/measure"
)

// cellHeight is the layout height of one text row in screen rows. Two
// rows per line keeps fraction geometry integral: branch offsets are
// half of a height, and halving an even height never lands between rows.
const cellHeight = 2

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ed := eqed.NewEditor()
	m := measure.NewCell(1, cellHeight)

	draw(screen, ed, m)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, ed, m)
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyEnter:
				ed.NewLine()
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				ed.DeleteBefore()
			case tcell.KeyDelete:
				ed.DeleteAfter()
			case tcell.KeyLeft:
				ed.MoveLeft()
			case tcell.KeyRight:
				ed.MoveRight()
			case tcell.KeyUp:
				ed.MoveUp()
			case tcell.KeyDown:
				ed.MoveDown()
			case tcell.KeyRune:
				ed.InsertText(string(ev.Rune()))
			default:
				continue
			}
			draw(screen, ed, m)
		}
	}
}

// draw runs one full layout pass and paints every primitive. Text runs
// are placed on the center row of their layout box; divider lines and the
// hardware cursor land on the boundary rows between branches.
func draw(screen tcell.Screen, ed *eqed.Editor, m eqed.Measurer) {
	screen.Clear()
	screen.HideCursor()
	style := tcell.StyleDefault

	w, h := screen.Size()
	ed.Render(float64(w), float64(h), m, func(p eqed.Primitive) {
		switch p := p.(type) {
		case eqed.TextRun:
			x := int(p.X)
			row := int(p.Y) + cellHeight/2
			for _, r := range p.Text {
				screen.SetContent(x, row, r, nil, style)
				x += runewidth.RuneWidth(r)
			}
		case eqed.DividerLine:
			row := int(p.Y)
			for i := 0; i < int(p.Width); i++ {
				screen.SetContent(int(p.X)+i, row, '─', nil, style)
			}
		case eqed.CursorMark:
			screen.ShowCursor(int(p.X), int(p.Y))
		}
	})
	screen.Show()
}
