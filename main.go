// terminal-banner prints a bordered, word-wrapped text box sized to the
// terminal.
//
// Usage:
//
//	terminal-banner [flags] [text ...]
//
// Each positional argument becomes a text block, appended after the lines
// of the configuration file.
//
// Flags:
//
//	-config string      Banner description file (.toml, .yaml); default: ~/.config/terminal-banner/banner.toml
//	-example string     Render a built-in example (default|strong)
//	-width int          Banner width (0 = auto-detect)
//	-symbols string     Outline preset (light|strong|double|rounded|dashed|ascii)
//	-padding string     Padding: "all", "horiz,vert" or "top,right,bottom,left"
//	-align string       Alignment of positional text (left|center|right)
//	-text-color string  Color of positional text
//	-color string       Color output (auto|always|never)
//	-sysinfo            Append host information (hostname, OS, CPU, memory, load)
//	-sysinfo-ttl dur    Reuse cached host information for this long (0 = no cache)
//	-dump-config        Print the effective banner description instead of rendering it
//	-format string      Encoding for -dump-config (toml|yaml)
//	-verbose            Enable verbose logging
//	-version            Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gitlab.com/tinyland/lab/terminal-banner/pkg/banner"
	"gitlab.com/tinyland/lab/terminal-banner/pkg/config"
	"gitlab.com/tinyland/lab/terminal-banner/pkg/style"
	"gitlab.com/tinyland/lab/terminal-banner/pkg/sysinfo"
	"gitlab.com/tinyland/lab/terminal-banner/pkg/terminal"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// sysinfoTimeout bounds host information collection.
const sysinfoTimeout = 3 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath string
	example    string
	width      int
	symbols    string
	padding    string
	align      string
	textColor  string
	color      string
	sysinfo    bool
	sysinfoTTL time.Duration
	dumpConfig bool
	format     string
	verbose    bool
	version    bool
	text       []string
	set        map[string]bool // flags given explicitly
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("terminal-banner", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{set: map[string]bool{}}
	fs.StringVar(&opts.configPath, "config", "", "Banner description file (.toml, .yaml)")
	fs.StringVar(&opts.example, "example", "", "Render a built-in example (default|strong)")
	fs.IntVar(&opts.width, "width", 0, "Banner width (0 = auto-detect)")
	fs.StringVar(&opts.symbols, "symbols", "", "Outline preset ("+strings.Join(banner.SymbolNames(), "|")+")")
	fs.StringVar(&opts.padding, "padding", "", `Padding: "all", "horiz,vert" or "top,right,bottom,left"`)
	fs.StringVar(&opts.align, "align", "left", "Alignment of positional text (left|center|right)")
	fs.StringVar(&opts.textColor, "text-color", "", "Color of positional text")
	fs.StringVar(&opts.color, "color", "", "Color output (auto|always|never)")
	fs.BoolVar(&opts.sysinfo, "sysinfo", false, "Append host information")
	fs.DurationVar(&opts.sysinfoTTL, "sysinfo-ttl", sysinfo.DefaultCacheTTL, "Reuse cached host information for this long (0 = no cache)")
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective banner description instead of rendering it")
	fs.StringVar(&opts.format, "format", "toml", "Encoding for -dump-config (toml|yaml)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	opts.text = fs.Args()
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "terminal-banner %s (%s) built %s\n", version, commit, date)
		return 0
	}

	logLevel := slog.LevelInfo
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}
	if err := applyFlags(cfg, opts); err != nil {
		logger.Error("invalid flags", "error", err)
		return 2
	}

	if opts.sysinfo {
		if err := appendSysinfo(ctx, cfg, opts.sysinfoTTL, logger); err != nil {
			logger.Error("failed to collect host information", "error", err)
			return 1
		}
	}

	if opts.dumpConfig {
		format, err := config.ParseFormat(opts.format)
		if err != nil {
			logger.Error("invalid flags", "error", err)
			return 2
		}
		data, err := config.Marshal(cfg, format)
		if err != nil {
			logger.Error("failed to encode config", "error", err)
			return 1
		}
		stdout.Write(data)
		return 0
	}

	b, err := cfg.Build()
	if err != nil {
		logger.Error("invalid banner description", "error", err)
		return 1
	}

	profile := terminal.ColorProfile(cfg.ColorMode())
	b.Decorator(style.For(profile))
	logger.Debug("rendering banner",
		"width", b.EffectiveWidth(),
		"symbols", cfg.Symbols,
		"lines", len(cfg.Lines),
		"color_mode", cfg.ColorMode(),
		"profile", profileName(profile))

	out, err := b.RenderChecked()
	if err != nil {
		logger.Error("cannot render banner", "error", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

// loadConfig picks the banner description: an explicit file, a built-in
// example, or the standard config path.
func loadConfig(opts *options, logger *slog.Logger) (*config.Config, error) {
	switch {
	case opts.configPath != "":
		logger.Debug("loading config", "path", opts.configPath)
		return config.LoadFromFile(opts.configPath)
	case opts.example != "":
		logger.Debug("using built-in example", "name", opts.example)
		return exampleConfig(opts.example)
	default:
		return config.Load()
	}
}

// applyFlags overrides cfg with explicitly given flags and appends the
// positional text.
func applyFlags(cfg *config.Config, opts *options) error {
	if opts.set["width"] {
		cfg.Width = opts.width
	}
	if opts.set["symbols"] {
		cfg.Symbols = opts.symbols
	}
	if opts.set["color"] {
		cfg.Color = opts.color
	}
	if opts.set["padding"] {
		p, err := parsePadding(opts.padding)
		if err != nil {
			return err
		}
		cfg.Padding = config.PaddingConfig(p)
	}

	if len(opts.text) > 0 {
		align, err := banner.ParseAlign(opts.align)
		if err != nil {
			return err
		}
		color, err := banner.ParseColor(opts.textColor)
		if err != nil {
			return err
		}
		for _, s := range opts.text {
			cfg.Lines = append(cfg.Lines, config.LineConfig{
				Kind:    config.KindText,
				Content: s,
				Align:   align.String(),
				Color:   string(color),
			})
		}
	}
	return nil
}

// parsePadding accepts one, two (horizontal, vertical) or four (top,
// right, bottom, left) comma-separated non-negative integers.
func parsePadding(s string) (banner.Padding, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return banner.Padding{}, fmt.Errorf("invalid padding %q: want non-negative integers", s)
		}
		vals[i] = n
	}
	switch len(vals) {
	case 1:
		return banner.NewPadding(vals[0]), nil
	case 2:
		return banner.NewPaddingHV(vals[0], vals[1]), nil
	case 4:
		return banner.Padding{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	}
	return banner.Padding{}, fmt.Errorf("invalid padding %q: want 1, 2 or 4 values", s)
}

func appendSysinfo(ctx context.Context, cfg *config.Config, ttl time.Duration, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, sysinfoTimeout)
	defer cancel()

	start := time.Now()
	info, hit, err := sysinfo.CollectCached(ctx, sysinfoCacheDir(), ttl)
	if err != nil {
		return err
	}
	logger.Debug("collected host information",
		"host", info.Hostname,
		"cached", hit,
		"elapsed", time.Since(start))

	symbols, err := cfg.BoxSymbols()
	if err != nil {
		return err
	}
	if len(cfg.Lines) > 0 {
		cfg.Lines = append(cfg.Lines, config.LineConfig{Kind: config.KindBlank})
	}
	cfg.Lines = append(cfg.Lines, config.LinesFrom(info.Lines(banner.BrightCyan, symbols.Horizontal))...)
	return nil
}

// sysinfoCacheDir returns $XDG_CACHE_HOME/terminal-banner, or "" when no
// cache directory is available.
func sysinfoCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "terminal-banner")
}
