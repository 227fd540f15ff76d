// Package config reads banner descriptions from TOML or YAML files so a
// banner can be composed without writing Go code.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/terminal-banner/pkg/banner"
	"gitlab.com/tinyland/lab/terminal-banner/pkg/terminal"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("config: invalid banner description")

// Line kinds accepted in LineConfig.Kind.
const (
	KindText    = "text"
	KindDivider = "divider"
	KindBlank   = "blank"
)

// Config describes one banner.
type Config struct {
	// Width is the banner width in columns; 0 detects the terminal width.
	Width int `toml:"width" yaml:"width"`
	// Symbols names an outline preset (see banner.SymbolNames).
	Symbols string `toml:"symbols" yaml:"symbols"`
	// CustomSymbols overrides individual glyphs of the preset.
	CustomSymbols SymbolsConfig `toml:"custom_symbols,omitempty" yaml:"custom_symbols,omitempty"`
	// Color is "auto", "always" or "never".
	Color   string        `toml:"color" yaml:"color"`
	Padding PaddingConfig `toml:"padding" yaml:"padding"`
	Lines   []LineConfig  `toml:"line" yaml:"lines"`
}

// SymbolsConfig holds per-glyph overrides; unset glyphs keep the preset's.
type SymbolsConfig struct {
	TopLeft     Glyph `toml:"top_left,omitempty,omitzero" yaml:"top_left,omitempty"`
	TopRight    Glyph `toml:"top_right,omitempty,omitzero" yaml:"top_right,omitempty"`
	BottomLeft  Glyph `toml:"bottom_left,omitempty,omitzero" yaml:"bottom_left,omitempty"`
	BottomRight Glyph `toml:"bottom_right,omitempty,omitzero" yaml:"bottom_right,omitempty"`
	Horizontal  Glyph `toml:"horizontal,omitempty,omitzero" yaml:"horizontal,omitempty"`
	Vertical    Glyph `toml:"vertical,omitempty,omitzero" yaml:"vertical,omitempty"`
}

// PaddingConfig mirrors banner.Padding.
type PaddingConfig struct {
	Top    int `toml:"top" yaml:"top"`
	Right  int `toml:"right" yaml:"right"`
	Bottom int `toml:"bottom" yaml:"bottom"`
	Left   int `toml:"left" yaml:"left"`
}

// LineConfig is one body line. Content, Align and Color apply to text
// lines; Char applies to dividers and defaults to the horizontal glyph.
type LineConfig struct {
	Kind    string `toml:"kind" yaml:"kind"`
	Content string `toml:"content,omitempty" yaml:"content,omitempty"`
	Align   string `toml:"align,omitempty" yaml:"align,omitempty"`
	Color   string `toml:"color,omitempty" yaml:"color,omitempty"`
	Char    Glyph  `toml:"char,omitempty,omitzero" yaml:"char,omitempty"`
}

// Validate checks every field that Build would otherwise reject and
// returns all problems joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width %d is negative", c.Width))
	}
	if _, err := banner.SymbolsByName(c.Symbols); err != nil {
		errs = append(errs, err)
	}
	if _, err := terminal.ParseColorMode(c.Color); err != nil {
		errs = append(errs, err)
	}
	p := c.Padding
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
		errs = append(errs, fmt.Errorf("padding %+v has a negative edge", p))
	}
	if c.Width > 0 && c.Width < 3+p.Left+p.Right {
		errs = append(errs, fmt.Errorf("width %d is below the minimum %d for the padding",
			c.Width, 3+p.Left+p.Right))
	}
	for i, l := range c.Lines {
		if err := l.validate(); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func (l LineConfig) validate() error {
	switch strings.ToLower(l.Kind) {
	case KindText, "":
		if _, err := banner.ParseAlign(l.Align); err != nil {
			return err
		}
		if _, err := banner.ParseColor(l.Color); err != nil {
			return err
		}
	case KindDivider, KindBlank:
	default:
		return fmt.Errorf("unknown kind %q (valid: text, divider, blank)", l.Kind)
	}
	return nil
}

// ColorMode returns the parsed color mode, ColorAuto if it is invalid.
func (c *Config) ColorMode() terminal.ColorMode {
	m, _ := terminal.ParseColorMode(c.Color)
	return m
}

// BoxSymbols returns the preset named by Symbols with CustomSymbols applied.
func (c *Config) BoxSymbols() (banner.BoxSymbols, error) {
	s, err := banner.SymbolsByName(c.Symbols)
	if err != nil {
		return banner.BoxSymbols{}, err
	}
	cs := c.CustomSymbols
	s.TopLeft = cs.TopLeft.Or(s.TopLeft)
	s.TopRight = cs.TopRight.Or(s.TopRight)
	s.BottomLeft = cs.BottomLeft.Or(s.BottomLeft)
	s.BottomRight = cs.BottomRight.Or(s.BottomRight)
	s.Horizontal = cs.Horizontal.Or(s.Horizontal)
	s.Vertical = cs.Vertical.Or(s.Vertical)
	return s, nil
}

// Build validates the description and turns it into a banner. The caller
// attaches a decorator according to ColorMode.
func (c *Config) Build() (*banner.Banner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	symbols, err := c.BoxSymbols()
	if err != nil {
		return nil, err
	}

	b := banner.New().
		Symbols(symbols).
		Padding(banner.Padding(c.Padding))
	if c.Width > 0 {
		b.Width(c.Width)
	}

	for _, l := range c.Lines {
		switch strings.ToLower(l.Kind) {
		case KindDivider:
			b.DividerWith(l.Char.Or(symbols.Horizontal))
		case KindBlank:
			b.Blank()
		default:
			align, _ := banner.ParseAlign(l.Align)
			color, _ := banner.ParseColor(l.Color)
			b.Text(banner.NewText(l.Content).Align(align).Color(color))
		}
	}
	return b, nil
}

// FromBanner returns the description of a banner drawn with the named
// symbol preset.
func FromBanner(symbols string, width int, padding banner.Padding, lines []banner.Line) *Config {
	cfg := DefaultConfig()
	cfg.Symbols = symbols
	cfg.Width = width
	cfg.Padding = PaddingConfig(padding)
	cfg.Lines = LinesFrom(lines)
	return cfg
}

// LinesFrom converts banner lines into their config form.
func LinesFrom(lines []banner.Line) []LineConfig {
	out := make([]LineConfig, 0, len(lines))
	for _, l := range lines {
		switch l.Kind {
		case banner.LineDivider:
			out = append(out, LineConfig{Kind: KindDivider, Char: Glyph(l.Glyph)})
		case banner.LineBlank:
			out = append(out, LineConfig{Kind: KindBlank})
		default:
			out = append(out, LineConfig{
				Kind:    KindText,
				Content: l.Text.Content,
				Align:   l.Text.Style.Align.String(),
				Color:   string(l.Text.Style.Color),
			})
		}
	}
	return out
}
