package measure

import "github.com/csm/CrookedText"

// BuiltinMeasurer measures glyphs using the parsed font's own tables.
// It reads per-glyph advance widths directly, which is exact for scripts
// without contextual substitution (Latin, Cyrillic, Greek, CJK).
//
// For fonts where the glyph chosen for a character depends on OpenType
// shaping, use SetMeasurer with a GoTextMeasurer.
//
// BuiltinMeasurer is stateless and safe for concurrent use.
type BuiltinMeasurer struct{}

// Measure implements the Measurer interface.
//
// Width is the glyph advance at the face size. Height is the face line
// extent (ascent + descent) by default, or the glyph's ink bounds height
// when the face was created with WithTightBounds.
func (m *BuiltinMeasurer) Measure(text string, face Face) []crookedtext.Size {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	tight := face.TightBounds()
	lineExtent := face.Metrics().LineExtent()

	runes := composedRunes(text)
	sizes := make([]crookedtext.Size, 0, len(runes))

	for _, r := range runes {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, size)

		height := lineExtent
		if tight {
			height = parsed.GlyphBounds(gid, size).Height()
		}

		sizes = append(sizes, crookedtext.Size{Width: advance, Height: height})
	}

	return sizes
}
