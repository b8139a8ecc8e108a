package crookedtext

// LayoutOptions configures arc layout behavior.
type LayoutOptions struct {
	// Radius is the distance from the circle center to the glyph track, in
	// the same linear units as the measured sizes. It must be positive: a
	// zero or negative radius produces a degenerate layout in which every
	// glyph collapses to the Advance angle.
	Radius float64

	// Alignment specifies how glyphs sit relative to the radius.
	Alignment Alignment

	// Direction is the rotational sense the text runs in.
	Direction Direction

	// Spacing is extra space between neighboring glyphs, in linear units
	// measured at the radius. Negative values are treated as 0.
	Spacing float64

	// Advance rotates the whole text along the arc, in radians.
	Advance float64

	// Styler produces the renderer payload stored on each placement.
	// Nil means identity: the payload is the Glyph itself.
	Styler Styler
}

// DefaultLayoutOptions returns sensible default layout options.
// Radius is left at zero and must be set by the caller.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Alignment: AlignCenter,
		Direction: DirectionClockwise,
		Spacing:   0, // No extra space between glyphs
		Advance:   0, // Text centered on the reference direction
	}
}

// Placement is the computed position of one glyph on the arc.
type Placement struct {
	// Glyph is the placed glyph. Glyph.Index is its storage index; the
	// placement's position in Layout.Placements is its traversal position.
	Glyph Glyph

	// Styled is the output of the configured Styler for this glyph.
	Styled any

	// Angle is the rotation of the glyph about the circle center, in
	// radians from the reference direction. Angles grow in the traversal
	// order of the layout's direction.
	Angle float64

	// RadialOffset is the distance from the circle center to the glyph
	// center, after alignment.
	RadialOffset float64

	// Scale is the mirroring factor for the glyph: (1, 1) for clockwise
	// layouts, (-1, -1) for counterclockwise ones. Every placement of a
	// layout carries the same value.
	Scale Point
}

// Position returns the absolute position of the glyph center for an arc
// centered at center. Angle zero points from the center toward twelve
// o'clock; in y-down coordinates positive angles rotate clockwise. The
// mirroring Scale is applied about the circle center, which carries
// counterclockwise text to the opposite side of the circle.
func (p Placement) Position(center Point) Point {
	return p.Transform(center).TransformPoint(Point{})
}

// Transform returns the full affine transform for the glyph: move the glyph
// center out by RadialOffset, rotate by Angle about the circle center,
// mirror by Scale, then translate to center. Renderers draw the glyph with
// its visual center at the local origin.
func (p Placement) Transform(center Point) Matrix {
	return Translate(center.X, center.Y).
		Multiply(Scale(p.Scale.X, p.Scale.Y)).
		Multiply(Rotate(p.Angle)).
		Multiply(Translate(0, -p.RadialOffset))
}

// Layout is the result of arc layout: one placement per glyph, in traversal
// order.
type Layout struct {
	// Placements holds the placed glyphs in traversal order.
	Placements []Placement

	// Span is the total angular extent the text consumes, in radians,
	// including the spacing between glyphs.
	Span float64
}

// LayoutGlyphs places the glyphs of seq along an arc according to opts,
// reading each glyph's measured size from sizes.
//
// The size for traversal position i is looked up at the storage index
// seq.StorageIndex(i), so counterclockwise layouts read the same
// measurements as clockwise ones. Glyphs without a recorded measurement are
// assumed UnmeasuredWidth wide and 0 high.
//
// The angle of each glyph is the arc consumed by the glyphs before it, plus
// half its own arc so its center sits on the angle, shifted back by half the
// total arc so the text as a whole is centered on Advance. Spacing
// contributes the same way: i gaps before the glyph, minus half of the n-1
// total gaps, converted to radians at the radius.
//
// LayoutGlyphs is a total function: every combination of sequence, sizes and
// options produces a well-formed Layout.
func LayoutGlyphs(seq Sequence, sizes SizeTable, opts LayoutOptions) *Layout {
	n := seq.Len()
	if n == 0 {
		return &Layout{}
	}

	// Normalize option values the engine cannot use directly.
	if opts.Spacing < 0 {
		opts.Spacing = 0
	}
	styler := opts.Styler
	if styler == nil {
		styler = identityStyler
	}
	scale := opts.Direction.Scale()

	layout := &Layout{Placements: make([]Placement, 0, n)}

	if opts.Radius <= 0 {
		// Degenerate arc: without a positive radius there is no angular
		// extent. Every glyph collapses to the Advance angle; radial
		// offsets still honor the configured alignment.
		for i := 0; i < n; i++ {
			g := seq.At(i)
			h := sizes.At(seq.StorageIndex(i)).Height
			layout.Placements = append(layout.Placements, Placement{
				Glyph:        g,
				Styled:       styler(g),
				Angle:        opts.Advance,
				RadialOffset: opts.Alignment.Offset(opts.Radius, h),
				Scale:        scale,
			})
		}
		return layout
	}

	var totalWidth float64
	for i := 0; i < n; i++ {
		totalWidth += sizes.At(seq.StorageIndex(i)).Width
	}

	halfTotalWidth := totalWidth / 2
	arcSpacingUnit := opts.Spacing / opts.Radius
	spacingCenter := float64(n-1) / 2

	var prevWidth float64
	for i := 0; i < n; i++ {
		g := seq.At(i)
		size := sizes.At(seq.StorageIndex(i))

		arc := (prevWidth - halfTotalWidth + size.Width/2) / opts.Radius
		spacing := arcSpacingUnit * (float64(i) - spacingCenter)

		layout.Placements = append(layout.Placements, Placement{
			Glyph:        g,
			Styled:       styler(g),
			Angle:        arc + spacing + opts.Advance,
			RadialOffset: opts.Alignment.Offset(opts.Radius, size.Height),
			Scale:        scale,
		})

		prevWidth += size.Width
	}

	layout.Span = totalWidth/opts.Radius + arcSpacingUnit*float64(n-1)
	return layout
}

// LayoutString lays text out along an arc with already-measured sizes, where
// sizes[i] is the measurement for the glyph at storage index i. It is a
// convenience wrapper around NewSequence, SizeTable and LayoutGlyphs.
func LayoutString(text string, sizes []Size, opts LayoutOptions) *Layout {
	seq := NewSequence(text, opts.Direction)
	var table SizeTable
	table.Set(sizes)
	return LayoutGlyphs(seq, table, opts)
}

// identityStyler is the default Styler: the payload is the glyph itself.
func identityStyler(g Glyph) any {
	return g
}
