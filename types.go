package crookedtext

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Alignment specifies how glyphs sit relative to the arc radius.
type Alignment int

const (
	// AlignCenter centers each glyph on the radius (default).
	AlignCenter Alignment = iota
	// AlignInside tucks each glyph fully inside the radius.
	AlignInside
	// AlignOutside pushes each glyph fully outside the radius.
	AlignOutside
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignInside:
		return "Inside"
	case AlignOutside:
		return "Outside"
	default:
		return unknownStr
	}
}

// Offset returns the radial distance from the circle center to the center of
// a glyph of the given height. Inside alignment pulls the glyph in by half
// its height, outside pushes it out by half, center leaves it on the radius.
// Values outside the defined alignments behave like AlignCenter.
//
// For any radius and height, the inside and outside offsets average to the
// radius: Offset(inside) + Offset(outside) == 2*radius.
func (a Alignment) Offset(radius, height float64) float64 {
	switch a {
	case AlignInside:
		return radius - height/2
	case AlignOutside:
		return radius + height/2
	default:
		return radius
	}
}

// Direction specifies the rotational sense in which text runs along the arc.
type Direction int

const (
	// DirectionClockwise runs text clockwise along the arc (default).
	DirectionClockwise Direction = iota
	// DirectionCounterclockwise runs text counterclockwise along the arc.
	DirectionCounterclockwise
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionClockwise:
		return "Clockwise"
	case DirectionCounterclockwise:
		return "Counterclockwise"
	default:
		return unknownStr
	}
}

// Scale returns the mirroring factor applied uniformly to every glyph of a
// layout running in this direction: (1, 1) for clockwise text, (-1, -1) for
// counterclockwise. Placement.Transform applies the mirror about the circle
// center, carrying each glyph to the opposite side of the circle with its
// orientation flipped; together with the reversed traversal order this keeps
// counterclockwise text reading correctly instead of upside-down and
// backward.
func (d Direction) Scale() Point {
	if d == DirectionCounterclockwise {
		return Point{X: -1, Y: -1}
	}
	return Point{X: 1, Y: 1}
}

// reversed reports whether glyphs traverse the arc in reversed storage order.
func (d Direction) reversed() bool {
	return d == DirectionCounterclockwise
}
