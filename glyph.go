package crookedtext

// Glyph is a single character of the input text.
type Glyph struct {
	// Rune is the Unicode character this glyph represents.
	Rune rune

	// Index is the position of this glyph in the text (in runes, not bytes).
	// This is the glyph's storage index: it stays the same for the lifetime
	// of one text value, no matter which direction the text runs in, and it
	// is the key under which the glyph's measured size is recorded.
	Index int
}

// Styler customizes the renderer payload carried by each placement.
// The layout engine calls it once per glyph and stores the result untouched;
// what the value means is entirely up to the renderer. A nil Styler means
// identity: the payload is the Glyph itself.
type Styler func(Glyph) any
