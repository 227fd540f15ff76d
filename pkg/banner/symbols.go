package banner

import (
	"fmt"
	"sort"
	"strings"
)

// BoxSymbols holds the six glyphs used to draw the banner outline. Every
// glyph is expected to occupy a single terminal column.
type BoxSymbols struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// LightSymbols returns the default single-line outline.
func LightSymbols() BoxSymbols {
	return BoxSymbols{
		TopLeft: '┌', TopRight: '┐',
		BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	}
}

// StrongSymbols returns the heavy-line outline.
func StrongSymbols() BoxSymbols {
	return BoxSymbols{
		TopLeft: '┏', TopRight: '┓',
		BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '━', Vertical: '┃',
	}
}

// DoubleSymbols returns the double-line outline.
func DoubleSymbols() BoxSymbols {
	return BoxSymbols{
		TopLeft: '╔', TopRight: '╗',
		BottomLeft: '╚', BottomRight: '╝',
		Horizontal: '═', Vertical: '║',
	}
}

// RoundedSymbols returns the single-line outline with rounded corners.
func RoundedSymbols() BoxSymbols {
	return BoxSymbols{
		TopLeft: '╭', TopRight: '╮',
		BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
	}
}

// DashedSymbols returns the dashed outline.
func DashedSymbols() BoxSymbols {
	return BoxSymbols{
		TopLeft: '┌', TopRight: '┐',
		BottomLeft: '└', BottomRight: '┘',
		Horizontal: '┄', Vertical: '┆',
	}
}

// ASCIISymbols returns an outline made of plain ASCII characters, for
// terminals without box-drawing glyphs.
func ASCIISymbols() BoxSymbols {
	return BoxSymbols{
		TopLeft: '+', TopRight: '+',
		BottomLeft: '+', BottomRight: '+',
		Horizontal: '-', Vertical: '|',
	}
}

// symbolSets maps preset names to their constructors. "default" and
// "heavy" are aliases.
var symbolSets = map[string]func() BoxSymbols{
	"light":   LightSymbols,
	"default": LightSymbols,
	"strong":  StrongSymbols,
	"heavy":   StrongSymbols,
	"double":  DoubleSymbols,
	"rounded": RoundedSymbols,
	"dashed":  DashedSymbols,
	"ascii":   ASCIISymbols,
}

// SymbolsByName looks up a preset by case-insensitive name. An empty name
// selects the light preset.
func SymbolsByName(name string) (BoxSymbols, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LightSymbols(), nil
	}
	fn, ok := symbolSets[name]
	if !ok {
		return BoxSymbols{}, fmt.Errorf("banner: unknown symbol set %q (valid: %s)",
			name, strings.Join(SymbolNames(), ", "))
	}
	return fn(), nil
}

// SymbolNames returns the preset names sorted alphabetically.
func SymbolNames() []string {
	names := make([]string, 0, len(symbolSets))
	for name := range symbolSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
