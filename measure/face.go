package measure

// Face represents a font face at a specific size.
// It is a lightweight object created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text.
	// This is the sum of all glyph advances.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Language returns the BCP 47 language tag measurement runs under.
	Language() string

	// TightBounds reports whether glyph heights come from per-glyph ink
	// bounds instead of the face line extent.
	TightBounds() bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in points.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
// It returns the zero Metrics when the source has been closed.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fontMetrics := parsed.Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline);
	// Metrics.Descent is the positive distance from the baseline.
	descent := fontMetrics.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:    fontMetrics.Ascent,
		Descent:   descent,
		LineGap:   fontMetrics.LineGap,
		XHeight:   fontMetrics.XHeight,
		CapHeight: fontMetrics.CapHeight,
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}

	total := 0.0
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		total += parsed.GlyphAdvance(gid, f.size)
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	if parsed == nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}

// Language implements Face.Language.
func (f *sourceFace) Language() string {
	return f.config.language
}

// TightBounds implements Face.TightBounds.
func (f *sourceFace) TightBounds() bool {
	return f.config.tightBounds
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// private implements the Face interface.
func (f *sourceFace) private() {}
