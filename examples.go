package main

import (
	"fmt"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/terminal-banner/pkg/banner"
	"gitlab.com/tinyland/lab/terminal-banner/pkg/config"
)

const lipsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor " +
	"incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud " +
	"exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure " +
	"dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. " +
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt " +
	"mollit anim id est laborum."

// exampleBanner builds one of the showcase banners: every alignment in a
// different color, a divider and a long wrapped paragraph.
func exampleBanner(name string) (symbols string, b *banner.Banner, err error) {
	left := banner.NewText("LEFT").Align(banner.AlignLeft).Color(banner.BrightGreen)
	center := banner.NewText("CENTER").Align(banner.AlignCenter).Color(banner.BrightBlue)
	right := banner.NewText("RIGHT").Align(banner.AlignRight).Color(banner.BrightRed)
	body := banner.NewText(lipsum).Color(banner.BrightCyan)

	switch name {
	case "default":
		b = banner.New().
			Width(82).
			Symbols(banner.LightSymbols()).
			TextString("DEFAULT").
			Newline().
			Text(left).
			Text(center).
			Text(right).
			Padding(banner.PaddingOne()).
			Divider().
			Text(body)
		return "light", b, nil
	case "strong":
		b = banner.New().
			Width(82).
			Symbols(banner.StrongSymbols()).
			Padding(banner.PaddingOne()).
			TextString("DEFAULT").
			DividerWith('=').
			Newline().
			Text(left).
			Text(center).
			Text(right).
			Divider().
			Text(body)
		return "strong", b, nil
	}
	return "", nil, fmt.Errorf("unknown example %q (valid: default, strong)", name)
}

// exampleConfig returns the description of a showcase banner.
func exampleConfig(name string) (*config.Config, error) {
	symbols, b, err := exampleBanner(name)
	if err != nil {
		return nil, err
	}
	s := b.Settings()
	return config.FromBanner(symbols, s.Width, s.Padding, b.Lines()), nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
