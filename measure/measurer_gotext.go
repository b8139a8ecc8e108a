package measure

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/csm/CrookedText"
)

// GoTextMeasurer measures glyphs through HarfBuzz shaping using
// go-text/typesetting. Compared with BuiltinMeasurer it honors OpenType
// substitution when a font resolves a character to a different glyph than
// the character map suggests, and it understands complex scripts.
//
// Each glyph is measured as an isolated single-rune run: glyphs on an arc
// are drawn independently of their neighbors, so cross-glyph kerning and
// ligatures never apply, and measuring in isolation keeps exactly one size
// per glyph.
//
// GoTextMeasurer is an opt-in replacement for BuiltinMeasurer:
//
//	measure.SetMeasurer(measure.NewGoTextMeasurer())
//	defer measure.SetMeasurer(nil) // Reset to default BuiltinMeasurer
//
// GoTextMeasurer is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates lightweight font.Face
// instances per Measure() call (font.Face is NOT safe for concurrent use).
// The HarfbuzzShaper instances are pooled via sync.Pool since they also are
// not concurrent-safe.
type GoTextMeasurer struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	// HarfbuzzShaper has internal mutable state and is NOT safe for
	// concurrent use, but reusing one across sequential runs is efficient.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	// font.Font is read-only and safe for concurrent use, unlike font.Face.
	// This avoids re-parsing the font data on every Measure() call.
	fontCache map[*FontSource]*font.Font
}

// NewGoTextMeasurer creates a GoTextMeasurer backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextMeasurer() *GoTextMeasurer {
	return &GoTextMeasurer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Measure implements the Measurer interface.
//
// Width is the summed advance of the glyphs HarfBuzz produces for the
// character. Height is the face line extent by default, or the shaped
// glyph's ink bounds height when the face was created with WithTightBounds.
func (m *GoTextMeasurer) Measure(text string, face Face) []crookedtext.Size {
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

	goFont, err := m.getOrCreateFont(source)
	if err != nil {
		crookedtext.Logger().Warn("glyph measurement skipped, font did not parse",
			"font", source.Name(), "error", err)
		return nil
	}

	// font.Face is not safe for concurrent use; each Measure() call gets
	// its own lightweight instance wrapping the cached thread-safe *Font.
	goFace := font.NewFace(goFont)

	size := face.Size()
	fixedSize := floatToFixed26_6(size)
	tight := face.TightBounds()
	lineExtent := face.Metrics().LineExtent()
	lang := language.NewLanguage(face.Language())

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer m.shaperPool.Put(hb)

	runes := composedRunes(text)
	sizes := make([]crookedtext.Size, 0, len(runes))
	run := make([]rune, 1)

	for _, r := range runes {
		run[0] = r
		output := hb.Shape(shaping.Input{
			Text:      run,
			RunStart:  0,
			RunEnd:    1,
			Direction: di.DirectionLTR,
			Face:      goFace,
			Size:      fixedSize,
			Script:    runeScript(r),
			Language:  lang,
		})

		var width, height float64
		for _, g := range output.Glyphs {
			width += fixed26_6ToFloat(g.Advance)
			if tight {
				//nolint:gosec // GlyphID is uint16 by design; overflow is handled by font subsetting
				if h := parsed.GlyphBounds(uint16(g.GlyphID), size).Height(); h > height {
					height = h
				}
			}
		}
		if !tight {
			height = lineExtent
		}

		sizes = append(sizes, crookedtext.Size{Width: width, Height: height})
	}

	return sizes
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not the Face).
// font.Font is read-only and safe for concurrent use.
func (m *GoTextMeasurer) getOrCreateFont(source *FontSource) (*font.Font, error) {
	// Fast path: check the cache with a read lock.
	m.mu.RLock()
	if f, ok := m.fontCache[source]; ok {
		m.mu.RUnlock()
		return f, nil
	}
	m.mu.RUnlock()

	// Slow path: parse the font and update the cache with a write lock.
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if f, ok := m.fontCache[source]; ok {
		return f, nil
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	reader := bytes.NewReader(source.rawData())
	goTextFace, err := font.ParseTTF(reader)
	if err != nil {
		return nil, err
	}
	crookedtext.Logger().Debug("font parsed for measurement", "font", source.Name())

	// Cache the Font (thread-safe), not the Face.
	m.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
// Call this to free memory when previously loaded fonts are no longer used.
func (m *GoTextMeasurer) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
// This is useful when a FontSource is closed.
func (m *GoTextMeasurer) RemoveSource(source *FontSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.fontCache, source)
}

// runeScript returns the script the rune should be shaped under.
// Whitespace carries no script of its own and measures as Latin.
func runeScript(r rune) language.Script {
	switch r {
	case ' ', '\t', '\n', '\r':
		return language.Latin
	}
	return language.LookupScript(r)
}
