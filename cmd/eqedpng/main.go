// Command eqedpng types an expression through the editor engine and
// renders the resulting document to a PNG image.
//
// Each character of the expression is fed to the editor as one keystroke,
// so "/" wraps the preceding element into a fraction exactly as it would
// interactively, and "\n" starts a new line:
//
//	eqedpng -output sum.png "1/2+3/4"
package main

import (
	"flag"
	"log"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/eqed"
	"github.com/gogpu/eqed/ggdraw"
)

func main() {
	var (
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 480, "image height")
		size   = flag.Float64("size", 20, "font size in points")
		output = flag.String("output", "eqed.png", "output file")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: eqedpng [flags] EXPRESSION")
	}

	ed := eqed.NewEditor()
	for _, r := range flag.Arg(0) {
		if r == '\n' {
			ed.NewLine()
			continue
		}
		ed.InsertText(string(r))
	}

	renderer, err := ggdraw.New(goregular.TTF, *size)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	if err := renderer.RenderPNG(ed, *width, *height, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Rendered to %s (%dx%d)\n", *output, *width, *height)
}
