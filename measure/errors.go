package measure

import "errors"

// Sentinel errors for the measure package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("measure: empty font data")
)
