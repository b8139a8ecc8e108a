// Package crookedtext lays text out along a circular arc.
//
// # Overview
//
// crookedtext computes, for every character of a string, the angle, radial
// offset and mirroring factor that place it on a circle of a given radius.
// The library draws nothing: glyph sizes are measured outside the layout
// engine (package measure provides a font-backed measurer) and rendering the
// placed glyphs is the caller's job. What remains is pure geometry, and
// every operation is a total function with no error returns.
//
// # Quick Start
//
//	import (
//		"github.com/csm/CrookedText"
//		"github.com/csm/CrookedText/measure"
//	)
//
//	source, err := measure.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer source.Close()
//	face := source.Face(24)
//
//	arc := crookedtext.NewArc("HELLO AROUND", crookedtext.LayoutOptions{Radius: 120})
//	arc.SetSizes(measure.Measure(arc.Text(), face))
//	layout := arc.Layout()
//
//	center := crookedtext.Point{X: 200, Y: 200}
//	for _, p := range layout.Placements {
//		pos := p.Position(center)
//		// Draw string(p.Glyph.Rune) centered at pos, rotated by p.Angle
//		// and scaled by p.Scale, or apply p.Transform(center) directly.
//	}
//
// # Data Flow
//
// Layout is an explicit two-step composition: feed measured sizes in with
// SetSizes, then call Layout. There are no observers and no hidden
// recomputation; a stale result just means Layout was not called again.
// Glyphs whose size was never recorded are assumed UnmeasuredWidth wide,
// which makes an incomplete measurement pass impossible to miss on screen.
//
// # Coordinate System
//
// Angles are in radians. Angle zero points from the circle center toward
// twelve o'clock, and in y-down screen coordinates positive angles advance
// clockwise. Radial offsets and glyph sizes share one linear unit; the
// library never cares whether it is pixels or points.
package crookedtext

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
