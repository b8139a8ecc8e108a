package measure

import (
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/csm/CrookedText"
)

// Measurer turns text into per-glyph sizes.
// Implementations provide different measurement fidelity:
//   - BuiltinMeasurer: advance widths straight from the parsed font tables
//   - GoTextMeasurer: HarfBuzz shaping via go-text/typesetting
type Measurer interface {
	// Measure returns one size per glyph of text, in storage order.
	// The font size is obtained from face.Size(). Implementations compose
	// text with NFC first so indexes line up with glyph sequences built by
	// the parent package.
	Measure(text string, face Face) []crookedtext.Size
}

var (
	measurerMu     sync.RWMutex
	globalMeasurer Measurer = &BuiltinMeasurer{}
)

// SetMeasurer sets the global measurer used by Measure().
// Pass nil to reset to the default BuiltinMeasurer.
//
// Example usage with the HarfBuzz-backed measurer:
//
//	measure.SetMeasurer(measure.NewGoTextMeasurer())
//	defer measure.SetMeasurer(nil) // Reset to default
func SetMeasurer(m Measurer) {
	measurerMu.Lock()
	defer measurerMu.Unlock()
	if m == nil {
		m = &BuiltinMeasurer{}
	}
	globalMeasurer = m
}

// GetMeasurer returns the current global measurer.
func GetMeasurer() Measurer {
	measurerMu.RLock()
	defer measurerMu.RUnlock()
	return globalMeasurer
}

// Measure is a convenience function that uses the global measurer.
// Index i of the result is the measured size of the glyph at storage
// index i of crookedtext.NewSequence(text, ...).
func Measure(text string, face Face) []crookedtext.Size {
	return GetMeasurer().Measure(text, face)
}

// composedRunes NFC-composes text and splits it into runes, matching the
// glyph derivation in the parent package.
func composedRunes(text string) []rune {
	return []rune(norm.NFC.String(text))
}
