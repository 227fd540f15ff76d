package banner

// Padding is the interior margin between the outline and the content:
// Top and Bottom count blank rows, Left and Right count blank columns.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// PaddingOne returns a padding of one on every edge.
func PaddingOne() Padding {
	return NewPadding(1)
}

// NewPadding creates a Padding with the same value on all four sides.
func NewPadding(all int) Padding {
	if all < 0 {
		all = 0
	}
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// NewPaddingHV creates a Padding with separate horizontal and vertical values.
// horiz applies to Left and Right; vert applies to Top and Bottom.
func NewPaddingHV(horiz, vert int) Padding {
	if horiz < 0 {
		horiz = 0
	}
	if vert < 0 {
		vert = 0
	}
	return Padding{Top: vert, Right: horiz, Bottom: vert, Left: horiz}
}

// negative reports whether any edge is below zero.
func (p Padding) negative() bool {
	return p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0
}
