package measure

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("measure: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont on top of a parsed sfnt.Font.
type ximageFont struct {
	font *sfnt.Font
}

// Name implements ParsedFont.Name.
func (f *ximageFont) Name() string {
	return f.nameEntry(sfnt.NameIDFamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageFont) FullName() string {
	return f.nameEntry(sfnt.NameIDFull)
}

// nameEntry reads one entry of the font's naming table, or "" if absent.
func (f *ximageFont) nameEntry(id sfnt.NameID) string {
	name, err := f.font.Name(nil, id)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed26_6(size), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixed26_6ToFloat(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageFont) GlyphBounds(glyphIndex uint16, size float64) Rect {
	var buf sfnt.Buffer

	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed26_6(size), font.HintingFull)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fixed26_6ToFloat(bounds.Min.X),
		MinY: fixed26_6ToFloat(bounds.Min.Y),
		MaxX: fixed26_6ToFloat(bounds.Max.X),
		MaxY: fixed26_6ToFloat(bounds.Max.Y),
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageFont) Metrics(size float64) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, floatToFixed26_6(size), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}

	ascent := fixed26_6ToFloat(metrics.Ascent)
	descent := fixed26_6ToFloat(metrics.Descent)
	return FontMetrics{
		Ascent: ascent,
		// sfnt reports Descent as a positive distance below the baseline;
		// FontMetrics carries it negative.
		Descent:   -descent,
		LineGap:   fixed26_6ToFloat(metrics.Height) - ascent - descent,
		XHeight:   fixed26_6ToFloat(metrics.XHeight),
		CapHeight: fixed26_6ToFloat(metrics.CapHeight),
	}
}

// floatToFixed26_6 converts a float64 size in points to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed26_6(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// fixed26_6ToFloat converts fixed.Int26_6 to float64.
func fixed26_6ToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
