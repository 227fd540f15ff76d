// Package banner renders a bordered, padded box of word-wrapped text for
// display on a terminal. A Banner is configured with chained calls and
// turned into a string with Render:
//
//	out := banner.New().
//		Width(82).
//		Symbols(banner.StrongSymbols()).
//		Padding(banner.PaddingOne()).
//		TextString("LIPSUM").
//		Divider().
//		Text(banner.NewText("Lorem ipsum dolor sit amet").Align(banner.AlignCenter)).
//		Render()
//
// Rendering is a pure function of the configuration: it never mutates the
// Banner and performs no I/O, so the same Banner may be rendered many
// times, and distinct banners concurrently.
package banner

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/terminal-banner/pkg/components"
	"gitlab.com/tinyland/lab/terminal-banner/pkg/terminal"
)

// ErrInvalidConfiguration is returned by Validate when the banner cannot be
// drawn at its effective width.
var ErrInvalidConfiguration = errors.New("banner: invalid configuration")

// ColumnsFunc reports the width of the output terminal in columns.
type ColumnsFunc func() int

// LineWrapper splits text into rows no wider than width display columns.
// Each returned row already starts with its indent: initialIndent for the
// first row and subsequentIndent for the rest.
type LineWrapper func(text string, width int, initialIndent, subsequentIndent string) []string

// Decorator applies a color to the payload of one rendered row. The
// returned string must have the same display width as s once escape
// sequences are ignored.
type Decorator interface {
	Decorate(s string, c Color) string
}

// Banner is the configuration of one box. The zero value is not usable;
// create banners with New.
type Banner struct {
	symbols  BoxSymbols
	padding  Padding
	width    int
	hasWidth bool
	lines    []Line

	columns   ColumnsFunc
	wrapper   LineWrapper
	decorator Decorator
}

// New creates a banner with light symbols, zero padding and a width taken
// from the terminal at render time.
func New() *Banner {
	return &Banner{
		symbols: LightSymbols(),
		columns: terminal.Columns,
		wrapper: components.WrapIndent,
	}
}

// Width sets an explicit width, overriding terminal detection.
func (b *Banner) Width(w int) *Banner {
	b.width = w
	b.hasWidth = true
	return b
}

// Symbols replaces the outline glyphs.
func (b *Banner) Symbols(s BoxSymbols) *Banner {
	b.symbols = s
	return b
}

// Padding replaces the interior padding.
func (b *Banner) Padding(p Padding) *Banner {
	b.padding = p
	return b
}

// Text appends a block of text.
func (b *Banner) Text(t Text) *Banner {
	b.lines = append(b.lines, TextLine(t))
	return b
}

// TextString appends a left-aligned block of text in the default color.
func (b *Banner) TextString(s string) *Banner {
	return b.Text(NewText(s))
}

// Divider appends a rule drawn with the horizontal glyph of the symbols
// configured at the time of the call.
func (b *Banner) Divider() *Banner {
	return b.DividerWith(b.symbols.Horizontal)
}

// DividerWith appends a rule drawn with glyph.
func (b *Banner) DividerWith(glyph rune) *Banner {
	b.lines = append(b.lines, DividerLine(glyph))
	return b
}

// DividerWithSpace appends a rule drawn with spaces.
func (b *Banner) DividerWithSpace() *Banner {
	return b.DividerWith(' ')
}

// Newline appends an empty row. It is the same as DividerWithSpace.
func (b *Banner) Newline() *Banner {
	return b.DividerWithSpace()
}

// Blank appends an empty row spanning the full interior, padding included.
func (b *Banner) Blank() *Banner {
	b.lines = append(b.lines, BlankLine())
	return b
}

// Append adds pre-built lines in order.
func (b *Banner) Append(lines ...Line) *Banner {
	b.lines = append(b.lines, lines...)
	return b
}

// Columns replaces the terminal width query used when no explicit width
// is set.
func (b *Banner) Columns(fn ColumnsFunc) *Banner {
	b.columns = fn
	return b
}

// Wrapper replaces the line wrapper.
func (b *Banner) Wrapper(w LineWrapper) *Banner {
	b.wrapper = w
	return b
}

// Decorator sets the color decorator. A nil decorator renders plain text.
func (b *Banner) Decorator(d Decorator) *Banner {
	b.decorator = d
	return b
}

// Lines returns a copy of the body lines in render order.
func (b *Banner) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Settings is a snapshot of the outline configuration of a banner.
type Settings struct {
	Symbols  BoxSymbols
	Padding  Padding
	Width    int
	WidthSet bool
}

// Settings returns the current outline configuration.
func (b *Banner) Settings() Settings {
	return Settings{
		Symbols:  b.symbols,
		Padding:  b.padding,
		Width:    b.width,
		WidthSet: b.hasWidth,
	}
}

// EffectiveWidth returns the explicit width if one was set, otherwise the
// current terminal width.
func (b *Banner) EffectiveWidth() int {
	if b.hasWidth {
		return b.width
	}
	if b.columns == nil {
		return terminal.DefaultColumns
	}
	return b.columns()
}

// Validate reports whether the banner can be drawn: the width must leave
// room for both vertical rules, the left and right padding and at least
// one content column, and no padding may be negative.
func (b *Banner) Validate() error {
	if b.padding.negative() {
		return fmt.Errorf("%w: negative padding %+v", ErrInvalidConfiguration, b.padding)
	}
	width := b.EffectiveWidth()
	need := 2 + b.padding.Left + b.padding.Right + 1
	if width < need {
		return fmt.Errorf("%w: width %d is below the minimum %d for padding left=%d right=%d",
			ErrInvalidConfiguration, width, need, b.padding.Left, b.padding.Right)
	}
	return nil
}

// RenderChecked validates the banner and renders it.
func (b *Banner) RenderChecked() (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	return b.Render(), nil
}

// String implements fmt.Stringer by rendering the banner.
func (b *Banner) String() string {
	return b.Render()
}
