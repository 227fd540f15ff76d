package banner

import (
	"strings"

	"gitlab.com/tinyland/lab/terminal-banner/pkg/components"
)

// Render draws the banner. Rows are joined with "\n" and the last row has
// no trailing newline.
//
// Render never fails. When the width is too small for the padding, every
// column count that would go negative is clamped to zero, which yields a
// malformed but finite box; use Validate or RenderChecked to reject such
// configurations instead.
func (b *Banner) Render() string {
	width := max(b.EffectiveWidth(), 0)
	pad := Padding{
		Top:    max(b.padding.Top, 0),
		Right:  max(b.padding.Right, 0),
		Bottom: max(b.padding.Bottom, 0),
		Left:   max(b.padding.Left, 0),
	}
	vertical := string(b.symbols.Vertical)
	inner := max(width-2, 0)

	r := renderer{
		banner:   b,
		width:    width,
		pad:      pad,
		vertical: vertical,
		indent:   vertical + strings.Repeat(" ", pad.Left),
		budget:   max(width-(pad.Right+1), 0),
		spacer:   vertical + strings.Repeat(" ", inner) + vertical + "\n",
	}

	horizontal := strings.Repeat(string(b.symbols.Horizontal), inner)

	var buf strings.Builder
	buf.WriteRune(b.symbols.TopLeft)
	buf.WriteString(horizontal)
	buf.WriteRune(b.symbols.TopRight)
	buf.WriteByte('\n')

	for i := 0; i < pad.Top; i++ {
		buf.WriteString(r.spacer)
	}

	for _, line := range b.lines {
		switch line.Kind {
		case LineText:
			r.text(&buf, line.Text)
		case LineDivider:
			r.divider(&buf, line.Glyph)
		case LineBlank:
			buf.WriteString(r.spacer)
		}
	}

	for i := 0; i < pad.Bottom; i++ {
		buf.WriteString(r.spacer)
	}

	buf.WriteRune(b.symbols.BottomLeft)
	buf.WriteString(horizontal)
	buf.WriteRune(b.symbols.BottomRight)
	return buf.String()
}

// renderer carries the values derived once per Render call.
type renderer struct {
	banner   *Banner
	width    int
	pad      Padding
	vertical string
	indent   string // vertical rule followed by the left padding
	budget   int    // wrap width: everything but the right padding and closing rule
	spacer   string // full blank interior row, newline included
}

// text writes one wrapped text block followed by a newline.
func (r *renderer) text(buf *strings.Builder, t Text) {
	offset := alignOffset(t.Style.Align, components.VisibleLen(t.Content), r.width, r.pad.Right)

	wrap := r.banner.wrapper
	if wrap == nil {
		wrap = components.WrapIndent
	}
	rows := wrap(strings.Repeat(" ", offset)+t.Content, r.budget, r.indent, r.indent)
	if len(rows) == 0 {
		rows = []string{r.indent}
	}

	for i, row := range rows {
		if r.banner.decorator != nil && strings.HasPrefix(row, r.vertical) {
			payload := row[len(r.vertical):]
			row = r.vertical + r.banner.decorator.Decorate(payload, t.Style.Color)
		}
		buf.WriteString(components.PadRight(row, r.width-1))
		buf.WriteString(r.vertical)
		if i < len(rows)-1 {
			buf.WriteByte('\n')
		}
	}
	buf.WriteByte('\n')
}

// divider writes a rule spanning the interior between the paddings.
func (r *renderer) divider(buf *strings.Builder, glyph rune) {
	n := max(r.width-2-r.pad.Left-r.pad.Right, 0)
	buf.WriteString(r.indent)
	buf.WriteString(strings.Repeat(string(glyph), n))
	buf.WriteString(strings.Repeat(" ", r.pad.Right))
	buf.WriteString(r.vertical)
	buf.WriteByte('\n')
}

// alignOffset returns the number of spaces prepended to a text block of
// display width n. Content wider than the banner is never shifted.
//
// The right padding is subtracted from every positive offset after the
// alignment formula, so right alignment accounts for it twice. Output of
// existing banners depends on this arithmetic.
func alignOffset(align TextAlign, n, width, right int) int {
	if n > width {
		return 0
	}
	offset := 0
	switch align {
	case AlignRight:
		offset = width - 2 - right - n
	case AlignCenter:
		offset = (width - 2 - n) / 2
	}
	if offset > 0 {
		offset -= right
	}
	return max(offset, 0)
}
