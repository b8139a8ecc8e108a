// Package measure provides per-glyph size measurement for arc layout.
//
// The measurement pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size
//   - Measurer: pluggable strategy turning text into per-glyph sizes
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	// Load font (do once, share across the application)
//	source, err := measure.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Create face at a specific size (lightweight)
//	face := source.Face(24)
//
//	// Measure once, lay out with the parent package
//	sizes := measure.Measure("HELLO", face)
//
// Measure composes text with NFC exactly the way crookedtext.NewSequence
// does, so index i of its result is the measured size of the glyph at
// storage index i.
//
// # Pluggable backends
//
// Font parsing is abstracted through the FontParser interface. By default
// golang.org/x/image/font/opentype is used; custom parsers can be registered
// for alternative implementations:
//
//	measure.RegisterParser("myparser", myCustomParser)
//	source, err := measure.NewFontSource(data, measure.WithParser("myparser"))
//
// Measurement itself is abstracted through the Measurer interface. The
// default BuiltinMeasurer reads advance widths straight from the parsed
// font tables; GoTextMeasurer measures through HarfBuzz shaping for fonts
// whose glyph choice depends on OpenType substitution:
//
//	measure.SetMeasurer(measure.NewGoTextMeasurer())
//	defer measure.SetMeasurer(nil) // back to the builtin
package measure
