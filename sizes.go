package crookedtext

// UnmeasuredWidth is the width assumed for glyphs that have no recorded
// measurement. A layout computed from an incomplete measurement pass comes
// out visibly wrong rather than subtly misaligned. The assumed height is
// zero, which leaves unmeasured glyphs sitting exactly on the radius.
const UnmeasuredWidth = 1e6

// unmeasured is the size reported for glyphs without a measurement.
var unmeasured = Size{Width: UnmeasuredWidth, Height: 0}

// Size holds the measured dimensions of a single glyph. Width and height are
// linear units; the engine never cares whether they are pixels or points, as
// long as they match the layout radius.
type Size struct {
	// Width is the horizontal extent the glyph consumes along the arc.
	Width float64

	// Height is the vertical extent used for inside/outside alignment.
	Height float64
}

// SizeTable records measured glyph sizes keyed by storage index.
//
// The zero value is an empty table where every lookup reports the
// unmeasured sentinel. SizeTable is a plain value with no locking; callers
// that mutate one from several goroutines provide their own synchronization.
type SizeTable struct {
	sizes []Size
}

// Set replaces the entire table, where sizes[i] is the measurement for the
// glyph at storage index i. There is no merging: entries from a previous
// measurement pass never survive. The slice is copied and can be reused
// after this call.
func (t *SizeTable) Set(sizes []Size) {
	if len(sizes) == 0 {
		t.sizes = nil
		return
	}
	t.sizes = make([]Size, len(sizes))
	copy(t.sizes, sizes)
}

// Len returns the number of recorded sizes.
func (t *SizeTable) Len() int {
	return len(t.sizes)
}

// At returns the recorded size for the glyph at the given storage index, or
// the unmeasured sentinel when the index has no recorded measurement.
// A recorded Size{0, 0} is a real measurement, not a miss: only indexes
// outside the recorded range fall back to the sentinel.
func (t *SizeTable) At(index int) Size {
	if index < 0 || index >= len(t.sizes) {
		return unmeasured
	}
	return t.sizes[index]
}
