package measure

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testFontSource creates a FontSource backed by Go Regular.
func testFontSource(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})

	return source
}

// TestNewFontSource tests loading a font from memory.
func TestNewFontSource(t *testing.T) {
	source := testFontSource(t)

	name := source.Name()
	if name == "" || name == "Unknown Font" {
		t.Errorf("Name() = %q, want the font's real name", name)
	}
	if !strings.HasPrefix(name, "Go") {
		t.Errorf("Name() = %q, want a Go font name", name)
	}
}

// TestNewFontSource_Empty tests that empty data is rejected with the
// sentinel error.
func TestNewFontSource_Empty(t *testing.T) {
	source, err := NewFontSource(nil)

	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if source != nil {
		t.Error("NewFontSource(nil) should return a nil source")
	}
}

// TestNewFontSource_InvalidData tests that garbage bytes fail to parse.
func TestNewFontSource_InvalidData(t *testing.T) {
	source, err := NewFontSource([]byte("this is not a font"))

	if err == nil {
		t.Error("NewFontSource with garbage data should fail")
	}
	if source != nil {
		t.Error("NewFontSource with garbage data should return a nil source")
	}
}

// TestNewFontSourceFromFile tests loading a font from disk.
func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("failed to write font file: %v", err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() = %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if !strings.HasPrefix(source.Name(), "Go") {
		t.Errorf("Name() = %q, want a Go font name", source.Name())
	}
}

// TestNewFontSourceFromFile_Missing tests a nonexistent path.
func TestNewFontSourceFromFile_Missing(t *testing.T) {
	source, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf"))

	if err == nil {
		t.Error("NewFontSourceFromFile with a missing file should fail")
	}
	if source != nil {
		t.Error("NewFontSourceFromFile with a missing file should return a nil source")
	}
}

// TestFontSource_Parsed tests access to the parsed font.
func TestFontSource_Parsed(t *testing.T) {
	source := testFontSource(t)

	parsed := source.Parsed()
	if parsed == nil {
		t.Fatal("Parsed() returned nil for an open source")
	}
	if parsed.NumGlyphs() <= 0 {
		t.Errorf("NumGlyphs() = %d, want positive", parsed.NumGlyphs())
	}
	if parsed.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want positive", parsed.UnitsPerEm())
	}
	if parsed.GlyphIndex('A') == 0 {
		t.Error("GlyphIndex('A') = 0, want a real glyph")
	}
	if adv := parsed.GlyphAdvance(parsed.GlyphIndex('A'), 16); adv <= 0 {
		t.Errorf("GlyphAdvance('A', 16) = %f, want positive", adv)
	}
}

// TestFontSource_GlyphBounds tests ink bounds of a visible glyph.
func TestFontSource_GlyphBounds(t *testing.T) {
	source := testFontSource(t)
	parsed := source.Parsed()

	bounds := parsed.GlyphBounds(parsed.GlyphIndex('A'), 16)
	if bounds.Empty() {
		t.Fatalf("GlyphBounds('A') = %+v, want non-empty", bounds)
	}
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		t.Errorf("GlyphBounds('A') = %+v, want positive extent", bounds)
	}
}

// TestFontSource_Close tests that a closed source releases its font.
func TestFontSource_Close(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	face := source.Face(16.0)

	if err := source.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if source.Parsed() != nil {
		t.Error("Parsed() should return nil after Close")
	}

	// Faces stay safe to use, reporting zero values.
	if m := face.Metrics(); m.Ascent != 0 || m.Descent != 0 {
		t.Errorf("closed face Metrics() = %+v, want zeros", m)
	}
	if adv := face.Advance("A"); adv != 0 {
		t.Errorf("closed face Advance() = %f, want 0", adv)
	}
	if face.HasGlyph('A') {
		t.Error("closed face HasGlyph() = true, want false")
	}
}

// TestFontSource_Face tests face creation and options.
func TestFontSource_Face(t *testing.T) {
	source := testFontSource(t)

	face := source.Face(16.0)
	if face.Size() != 16.0 {
		t.Errorf("Size() = %f, want 16", face.Size())
	}
	if face.Language() != "en" {
		t.Errorf("default Language() = %q, want \"en\"", face.Language())
	}
	if face.TightBounds() {
		t.Error("default TightBounds() = true, want false")
	}
	if face.Source() != source {
		t.Error("Source() did not return the creating source")
	}

	custom := source.Face(24.0, WithLanguage("de"), WithTightBounds())
	if custom.Size() != 24.0 {
		t.Errorf("Size() = %f, want 24", custom.Size())
	}
	if custom.Language() != "de" {
		t.Errorf("Language() = %q, want \"de\"", custom.Language())
	}
	if !custom.TightBounds() {
		t.Error("TightBounds() = false after WithTightBounds")
	}
}

// TestFace_Metrics tests the positive-descent metrics convention.
func TestFace_Metrics(t *testing.T) {
	source := testFontSource(t)
	face := source.Face(16.0)

	m := face.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %f, want positive", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %f, want positive (distance below the baseline)", m.Descent)
	}
	if got := m.LineExtent(); got != m.Ascent+m.Descent {
		t.Errorf("LineExtent() = %f, want %f", got, m.Ascent+m.Descent)
	}
}

// TestMetrics_Helpers tests the derived metric values.
func TestMetrics_Helpers(t *testing.T) {
	m := Metrics{Ascent: 12, Descent: 4, LineGap: 3}
	if got := m.LineExtent(); got != 16 {
		t.Errorf("LineExtent() = %f, want 16", got)
	}
	if got := m.LineHeight(); got != 19 {
		t.Errorf("LineHeight() = %f, want 19", got)
	}
}

// TestFace_MetricsScaleWithSize tests that metrics grow with the font size.
func TestFace_MetricsScaleWithSize(t *testing.T) {
	source := testFontSource(t)

	small := source.Face(12.0).Metrics()
	large := source.Face(48.0).Metrics()

	if large.Ascent <= small.Ascent {
		t.Errorf("48pt ascent %f should exceed 12pt ascent %f", large.Ascent, small.Ascent)
	}
	if large.LineExtent() <= small.LineExtent() {
		t.Errorf("48pt line extent %f should exceed 12pt %f",
			large.LineExtent(), small.LineExtent())
	}
}

// TestFace_Advance tests string advance accumulation.
func TestFace_Advance(t *testing.T) {
	source := testFontSource(t)
	face := source.Face(16.0)

	one := face.Advance("A")
	two := face.Advance("AB")

	if one <= 0 {
		t.Errorf("Advance(\"A\") = %f, want positive", one)
	}
	if two <= one {
		t.Errorf("Advance(\"AB\") = %f, want more than Advance(\"A\") = %f", two, one)
	}
	if face.Advance("") != 0 {
		t.Errorf("Advance(\"\") = %f, want 0", face.Advance(""))
	}
}

// TestFace_HasGlyph tests glyph coverage checks.
func TestFace_HasGlyph(t *testing.T) {
	source := testFontSource(t)
	face := source.Face(16.0)

	if !face.HasGlyph('A') {
		t.Error("HasGlyph('A') = false, want true")
	}
	// Private use area, not covered by Go Regular.
	if face.HasGlyph('\uE000') {
		t.Error("HasGlyph(U+E000) = true, want false")
	}
}

// TestRegisterParser tests that a custom parser takes over loading.
func TestRegisterParser(t *testing.T) {
	RegisterParser("stub", stubParser{})
	t.Cleanup(func() {
		delete(parserRegistry, "stub")
	})

	source, err := NewFontSource([]byte{1, 2, 3}, WithParser("stub"))
	if err != nil {
		t.Fatalf("NewFontSource(WithParser) = %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() != "Stub Font" {
		t.Errorf("Name() = %q, want the stub parser's name", source.Name())
	}
}

// TestGetParser_UnknownFallsBack tests the default parser fallback.
func TestGetParser_UnknownFallsBack(t *testing.T) {
	p := getParser("no-such-parser")
	if _, ok := p.(*ximageParser); !ok {
		t.Errorf("getParser(unknown) = %T, want *ximageParser", p)
	}
}

// TestFontMetrics_Height tests the parser-level metrics convention, where
// descent is negative.
func TestFontMetrics_Height(t *testing.T) {
	m := FontMetrics{Ascent: 10, Descent: -3, LineGap: 2}
	if got := m.Height(); got != 15 {
		t.Errorf("Height() = %f, want 15", got)
	}
}

// TestRect tests the rectangle helpers.
func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: -8, MaxX: 5, MaxY: 2}
	if r.Width() != 4 {
		t.Errorf("Width() = %f, want 4", r.Width())
	}
	if r.Height() != 10 {
		t.Errorf("Height() = %f, want 10", r.Height())
	}
	if r.Empty() {
		t.Error("Empty() = true for a real rectangle")
	}
	if !(Rect{}).Empty() {
		t.Error("Empty() = false for the zero rectangle")
	}
}

// stubParser is a FontParser that accepts anything.
type stubParser struct{}

func (stubParser) Parse([]byte) (ParsedFont, error) {
	return stubFont{}, nil
}

// stubFont is a minimal ParsedFont with fixed answers.
type stubFont struct{}

func (stubFont) Name() string     { return "Stub Font" }
func (stubFont) FullName() string { return "Stub Font Regular" }
func (stubFont) NumGlyphs() int   { return 1 }
func (stubFont) UnitsPerEm() int  { return 1000 }

func (stubFont) GlyphIndex(rune) uint16 { return 1 }

func (stubFont) GlyphAdvance(_ uint16, size float64) float64 {
	return size / 2
}

func (stubFont) GlyphBounds(_ uint16, size float64) Rect {
	return Rect{MinX: 0, MinY: -size, MaxX: size / 2, MaxY: 0}
}

func (stubFont) Metrics(size float64) FontMetrics {
	return FontMetrics{Ascent: size, Descent: -size / 4, LineGap: 0}
}
