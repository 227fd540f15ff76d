package banner

// LineKind tags the variant held by a Line.
type LineKind int

const (
	// LineText is a wrapped text block.
	LineText LineKind = iota
	// LineDivider is a horizontal rule drawn with Line.Glyph.
	LineDivider
	// LineBlank is an empty interior row.
	LineBlank
)

var lineKindNames = [...]string{
	LineText:    "text",
	LineDivider: "divider",
	LineBlank:   "blank",
}

// String returns the lowercase name of the kind.
func (k LineKind) String() string {
	if k >= 0 && int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return "unknown"
}

// Line is one entry of the banner body. Only the field matching Kind is
// meaningful.
type Line struct {
	Kind  LineKind
	Text  Text
	Glyph rune
}

// TextLine wraps t as a body line.
func TextLine(t Text) Line {
	return Line{Kind: LineText, Text: t}
}

// DividerLine returns a rule drawn with glyph.
func DividerLine(glyph rune) Line {
	return Line{Kind: LineDivider, Glyph: glyph}
}

// BlankLine returns an empty interior row.
func BlankLine() Line {
	return Line{Kind: LineBlank}
}
