// Package eqed implements a structured equation editor core.
//
// # Overview
//
// eqed maintains a tree-shaped mathematical document: lines of terms, where
// a term is either a text leaf or a fraction holding two nested term
// sequences. A recursive cursor addresses any gap at any nesting depth, and
// a recursive layout pass turns the tree into a flat list of positioned
// draw primitives (text runs, divider lines, cursor marks).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/eqed"
//	    "github.com/gogpu/eqed/measure"
//	)
//
//	ed := eqed.NewEditor()
//	ed.InsertText("1")
//	ed.InsertText("/") // wraps "1" into a fraction, cursor in denominator
//	ed.InsertText("2")
//
//	m := measure.NewCell(1, 1)
//	ed.Render(80, 24, m, func(p eqed.Primitive) {
//	    // hand each primitive to a drawing backend
//	})
//
// # Architecture
//
// The library is organized into:
//   - Core: Term/Sequence tree, Cursor, Editor, layout
//   - measure: Measurer implementations (OpenType faces, terminal cells)
//   - ggdraw: draws emitted primitives onto a gogpu/gg context
//   - cmd/eqed, cmd/eqedpng: terminal and PNG frontends
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down. Units are whatever the Measurer
// reports (pixels for font measurers, cells for terminal measurers).
//
// # Collaborators
//
// eqed never measures or draws text itself. Text measurement comes in
// through the Measurer interface and drawing goes out through the emit
// callback of Render; both are in-process contracts with the host program.
package eqed

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
