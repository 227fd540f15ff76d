// Package style colors banner rows with SGR escape sequences. It is kept
// apart from package banner so plain rendering carries no color
// dependency; a Decorator is plugged in with (*banner.Banner).Decorator.
package style

import (
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/terminal-banner/pkg/banner"
)

// Decorator renders text in a banner.Color for a given terminal profile.
// Colors richer than the profile are degraded to the nearest supported
// color. With termenv.Ascii text is returned unchanged.
type Decorator struct {
	profile termenv.Profile
}

// New creates a Decorator for profile.
func New(profile termenv.Profile) Decorator {
	return Decorator{profile: profile}
}

// Profile returns the profile the decorator emits for.
func (d Decorator) Profile() termenv.Profile {
	return d.profile
}

// Decorate wraps s in the escape sequences for c. Empty strings and
// unknown colors are returned as-is.
func (d Decorator) Decorate(s string, c banner.Color) string {
	if s == "" || d.profile == termenv.Ascii {
		return s
	}
	code := c.Code()
	if code == "" {
		return s
	}
	return d.profile.String(s).Foreground(d.profile.Color(code)).String()
}

// For returns a banner decorator for profile, or nil when the profile has
// no color so the banner renders plain text.
func For(profile termenv.Profile) banner.Decorator {
	if profile == termenv.Ascii {
		return nil
	}
	return New(profile)
}
