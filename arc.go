package crookedtext

// Arc lays text out along a circular arc from externally measured glyph
// sizes.
//
// The data flow is an explicit composition: create the Arc, feed measured
// sizes in with SetSizes, then call Layout. Nothing recomputes behind the
// caller's back; changing text, sizes or options takes effect on the next
// Layout call. An Arc is not safe for concurrent mutation.
type Arc struct {
	text  string
	opts  LayoutOptions
	seq   Sequence
	sizes SizeTable
}

// NewArc creates an arc layouter for the given text and options.
func NewArc(text string, opts LayoutOptions) *Arc {
	return &Arc{
		text: text,
		opts: opts,
		seq:  NewSequence(text, opts.Direction),
	}
}

// SetText replaces the text and clears all recorded sizes. Storage indices
// are only meaningful for one text value, so measurements of the old text
// never leak into the new one.
func (a *Arc) SetText(text string) {
	a.text = text
	a.seq = NewSequence(text, a.opts.Direction)
	a.sizes = SizeTable{}
}

// SetSizes replaces the recorded glyph sizes, where sizes[i] is the
// measurement for the glyph at storage index i.
func (a *Arc) SetSizes(sizes []Size) {
	a.sizes.Set(sizes)
	Logger().Debug("arc sizes replaced",
		"glyphs", a.seq.Len(), "measured", a.sizes.Len())
}

// SetOptions replaces the layout options. Recorded sizes survive: they are
// keyed by storage index, which a direction change does not disturb.
func (a *Arc) SetOptions(opts LayoutOptions) {
	if opts.Direction != a.opts.Direction {
		a.seq = NewSequence(a.text, opts.Direction)
	}
	a.opts = opts
}

// Text returns the current text.
func (a *Arc) Text() string {
	return a.text
}

// Options returns the current layout options.
func (a *Arc) Options() LayoutOptions {
	return a.opts
}

// Sequence returns the current glyph sequence.
func (a *Arc) Sequence() Sequence {
	return a.seq
}

// Layout computes glyph placements from the current text, sizes and options.
// Results are never cached; call it again after SetText, SetSizes or
// SetOptions.
func (a *Arc) Layout() *Layout {
	if n := a.seq.Len(); a.sizes.Len() < n {
		Logger().Warn("arc layout with unmeasured glyphs",
			"glyphs", n, "measured", a.sizes.Len())
	}
	return LayoutGlyphs(a.seq, a.sizes, a.opts)
}
