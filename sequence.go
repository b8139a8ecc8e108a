package crookedtext

import "golang.org/x/text/unicode/norm"

// Sequence is the ordered list of glyphs laid out along the arc.
//
// Glyphs are held in storage order, the order they appear in the text. For
// clockwise layouts the arc traversal matches storage order; counterclockwise
// layouts traverse the reversed text, and StorageIndex maps each traversal
// position back to the glyph placed there. A Sequence is immutable after
// creation.
type Sequence struct {
	glyphs    []Glyph
	direction Direction
}

// NewSequence derives the glyph sequence for text running in the given
// direction.
//
// The text is NFC-composed first: a base letter followed by a combining
// accent becomes a single glyph wherever a precomposed form exists. Each
// glyph claims its own slot on the arc, and an orphaned combining mark would
// otherwise be placed as a glyph of its own.
func NewSequence(text string, direction Direction) Sequence {
	composed := norm.NFC.String(text)
	glyphs := make([]Glyph, 0, len(composed))
	i := 0
	for _, r := range composed {
		glyphs = append(glyphs, Glyph{Rune: r, Index: i})
		i++
	}
	return Sequence{glyphs: glyphs, direction: direction}
}

// Len returns the number of glyphs in the sequence.
func (s Sequence) Len() int {
	return len(s.glyphs)
}

// Direction returns the direction the sequence was built for.
func (s Sequence) Direction() Direction {
	return s.direction
}

// StorageIndex maps a layout position to the storage index of the glyph
// placed there: the identity for clockwise sequences, the mirrored index
// Len()-1-i for counterclockwise ones. Positions outside [0, Len()) return
// -1, an index no glyph occupies.
func (s Sequence) StorageIndex(i int) int {
	if i < 0 || i >= len(s.glyphs) {
		return -1
	}
	if s.direction.reversed() {
		return len(s.glyphs) - 1 - i
	}
	return i
}

// At returns the glyph at layout position i, or the zero Glyph when i is
// outside [0, Len()).
func (s Sequence) At(i int) Glyph {
	j := s.StorageIndex(i)
	if j < 0 {
		return Glyph{}
	}
	return s.glyphs[j]
}

// Glyphs returns a copy of the glyphs in storage order.
func (s Sequence) Glyphs() []Glyph {
	out := make([]Glyph, len(s.glyphs))
	copy(out, s.glyphs)
	return out
}
