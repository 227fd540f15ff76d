package config

import (
	"fmt"
	"unicode/utf8"
)

// Glyph is a single character read from a config file as a one-character
// string, e.g. char = "=". The zero value means "not set".
type Glyph rune

// UnmarshalText implements encoding.TextUnmarshaler for TOML and YAML parsing.
func (g *Glyph) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*g = 0
		return nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return fmt.Errorf("invalid glyph %q: want exactly one character", s)
	}
	*g = Glyph(r)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML and YAML serialization.
func (g Glyph) MarshalText() ([]byte, error) {
	if g == 0 {
		return []byte{}, nil
	}
	return []byte(string(rune(g))), nil
}

// Or returns g as a rune, or fallback when g is not set.
func (g Glyph) Or(fallback rune) rune {
	if g == 0 {
		return fallback
	}
	return rune(g)
}
