// Command arcdemo lays out a string along a circular arc and prints
// where every glyph lands.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/csm/CrookedText"
	"github.com/csm/CrookedText/measure"
)

func main() {
	var (
		text      = flag.String("text", "CURVED TEXT", "text to lay out")
		radius    = flag.Float64("radius", 100, "arc radius in points")
		alignment = flag.String("alignment", "center", "baseline alignment: center, inside, outside")
		direction = flag.String("direction", "clockwise", "reading direction: clockwise, counterclockwise")
		spacing   = flag.Float64("spacing", 0, "extra tracking between glyphs in points")
		advance   = flag.Float64("advance", 0, "rotation of the whole arc in radians")
		fontPath  = flag.String("font", "", "TTF font file (default Go Regular)")
		fontSize  = flag.Float64("size", 24, "font size in points")
		engine    = flag.String("engine", "builtin", "measurement engine: builtin, gotext")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		crookedtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	source := loadFont(*fontPath)
	defer func() { _ = source.Close() }()

	switch *engine {
	case "builtin":
	case "gotext":
		measure.SetMeasurer(measure.NewGoTextMeasurer())
	default:
		log.Fatalf("Unknown engine %q (want builtin or gotext)", *engine)
	}

	opts := crookedtext.DefaultLayoutOptions()
	opts.Radius = *radius
	opts.Alignment = parseAlignment(*alignment)
	opts.Direction = parseDirection(*direction)
	opts.Spacing = *spacing
	opts.Advance = *advance

	arc := crookedtext.NewArc(*text, opts)
	arc.SetSizes(measure.Measure(*text, source.Face(*fontSize)))
	layout := arc.Layout()

	center := crookedtext.Pt(0, 0)
	fmt.Printf("%q on a radius %g arc (%s, %s, font %s)\n\n",
		*text, *radius, opts.Alignment, opts.Direction, source.Name())
	fmt.Printf("%-6s %5s %10s %10s %10s %10s %10s\n",
		"glyph", "idx", "angle", "degrees", "offset", "x", "y")
	for _, p := range layout.Placements {
		pos := p.Position(center)
		fmt.Printf("%-6q %5d %10.4f %10.2f %10.2f %10.2f %10.2f\n",
			string(p.Glyph.Rune), p.Glyph.Index, p.Angle, p.Angle*180/math.Pi, p.RadialOffset, pos.X, pos.Y)
	}
	fmt.Printf("\nspan: %.4f rad (%.2f of the circle)\n",
		layout.Span, layout.Span/(2*math.Pi))
}

// loadFont opens the font file, or falls back to the embedded Go Regular.
func loadFont(path string) *measure.FontSource {
	if path == "" {
		source, err := measure.NewFontSource(goregular.TTF)
		if err != nil {
			log.Fatalf("Failed to load Go Regular: %v", err)
		}
		return source
	}
	source, err := measure.NewFontSourceFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	return source
}

func parseAlignment(s string) crookedtext.Alignment {
	switch s {
	case "center":
		return crookedtext.AlignCenter
	case "inside":
		return crookedtext.AlignInside
	case "outside":
		return crookedtext.AlignOutside
	}
	log.Fatalf("Unknown alignment %q (want center, inside or outside)", s)
	return crookedtext.AlignCenter
}

func parseDirection(s string) crookedtext.Direction {
	switch s {
	case "clockwise":
		return crookedtext.DirectionClockwise
	case "counterclockwise":
		return crookedtext.DirectionCounterclockwise
	}
	log.Fatalf("Unknown direction %q (want clockwise or counterclockwise)", s)
	return crookedtext.DirectionClockwise
}
