package banner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TextAlign controls where a text block sits between the vertical rules.
type TextAlign int

const (
	// AlignLeft places text against the left padding (default).
	AlignLeft TextAlign = iota
	// AlignRight places text against the right padding.
	AlignRight
	// AlignCenter centers text; odd slack goes to the right.
	AlignCenter
)

var alignNames = [...]string{
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignCenter: "center",
}

// String returns the lowercase name of the alignment.
func (a TextAlign) String() string {
	if a >= 0 && int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "left"
}

// ParseAlign converts a name such as "center" into a TextAlign. An empty
// string yields AlignLeft.
func ParseAlign(s string) (TextAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("banner: unknown alignment %q (valid: left, center, right)", s)
}

// Color names a foreground color: one of the sixteen named ANSI colors,
// a 0-255 palette index, or a "#rrggbb" hex value.
type Color string

// Named ANSI colors.
const (
	Black         Color = "black"
	Red           Color = "red"
	Green         Color = "green"
	Yellow        Color = "yellow"
	Blue          Color = "blue"
	Magenta       Color = "magenta"
	Cyan          Color = "cyan"
	White         Color = "white"
	BrightBlack   Color = "bright-black"
	BrightRed     Color = "bright-red"
	BrightGreen   Color = "bright-green"
	BrightYellow  Color = "bright-yellow"
	BrightBlue    Color = "bright-blue"
	BrightMagenta Color = "bright-magenta"
	BrightCyan    Color = "bright-cyan"
	BrightWhite   Color = "bright-white"
)

// DefaultColor is applied to text that does not pick a color.
const DefaultColor = BrightWhite

// namedColors maps each named color to its ANSI palette index.
var namedColors = map[Color]int{
	Black: 0, Red: 1, Green: 2, Yellow: 3,
	Blue: 4, Magenta: 5, Cyan: 6, White: 7,
	BrightBlack: 8, BrightRed: 9, BrightGreen: 10, BrightYellow: 11,
	BrightBlue: 12, BrightMagenta: 13, BrightCyan: 14, BrightWhite: 15,
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ParseColor normalizes and validates a color name. Underscores and
// spaces in named colors are accepted in place of hyphens, so
// "BrightGreen", "bright_green" and "bright green" all resolve to
// BrightGreen. An empty string yields DefaultColor.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultColor, nil
	}
	if hexColorRegex.MatchString(s) {
		return Color(strings.ToLower(s)), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("banner: color index %d out of range 0-255", n)
		}
		return Color(s), nil
	}
	name := strings.ToLower(s)
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	if strings.HasPrefix(name, "bright") && !strings.HasPrefix(name, "bright-") {
		name = "bright-" + strings.TrimPrefix(name, "bright")
	}
	if _, ok := namedColors[Color(name)]; ok {
		return Color(name), nil
	}
	return "", fmt.Errorf("banner: unknown color %q", s)
}

// Code returns the color in the form accepted by terminal color profiles:
// a decimal palette index for named and indexed colors, or the hex string.
// Unknown values return an empty string.
func (c Color) Code() string {
	if idx, ok := namedColors[c]; ok {
		return strconv.Itoa(idx)
	}
	if hexColorRegex.MatchString(string(c)) {
		return string(c)
	}
	if n, err := strconv.Atoi(string(c)); err == nil && n >= 0 && n <= 255 {
		return string(c)
	}
	return ""
}

// TextStyle groups the presentation attributes of a text block.
type TextStyle struct {
	Align TextAlign
	Color Color
}

// DefaultTextStyle returns left alignment in DefaultColor.
func DefaultTextStyle() TextStyle {
	return TextStyle{Align: AlignLeft, Color: DefaultColor}
}

// Text is a block of content wrapped inside the banner.
type Text struct {
	Content string
	Style   TextStyle
}

// NewText creates a left-aligned text block in the default color.
func NewText(content string) Text {
	return Text{Content: content, Style: DefaultTextStyle()}
}

// Align returns a copy of t with the given alignment.
func (t Text) Align(a TextAlign) Text {
	t.Style.Align = a
	return t
}

// Color returns a copy of t with the given color.
func (t Text) Color(c Color) Text {
	t.Style.Color = c
	return t
}
