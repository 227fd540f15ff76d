package terminal

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when rendered banners are colored.
type ColorMode int

const (
	// ColorAuto colors output only when stdout is a terminal, using the
	// profile the environment advertises.
	ColorAuto ColorMode = iota
	// ColorAlways colors output even when it is piped.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

var colorModeNames = [...]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

// String returns the lowercase name of the mode.
func (m ColorMode) String() string {
	if m >= 0 && int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return "auto"
}

// ParseColorMode converts "auto", "always" or "never" into a ColorMode.
// An empty string yields ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false", "none":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("terminal: unknown color mode %q (valid: auto, always, never)", s)
}

var (
	cachedProfile termenv.Profile
	profileOnce   sync.Once
)

// IsTerminal reports whether fd refers to a terminal, Cygwin and MSYS
// ptys included.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// EnvProfile returns the color profile advertised by the environment
// (TERM, COLORTERM, NO_COLOR, CLICOLOR_FORCE). The result is cached after
// the first call; detection runs exactly once.
func EnvProfile() termenv.Profile {
	profileOnce.Do(func() {
		cachedProfile = termenv.EnvColorProfile()
	})
	return cachedProfile
}

// ColorProfile resolves mode into the profile used for decoration.
// termenv.Ascii means no color.
func ColorProfile(mode ColorMode) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if p := EnvProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	default:
		if !IsTerminal(os.Stdout.Fd()) {
			return termenv.Ascii
		}
		return EnvProfile()
	}
}
