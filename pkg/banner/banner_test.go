package banner

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Builder tests ---

func TestNewDefaults(t *testing.T) {
	b := New()
	s := b.Settings()
	if s.Symbols != LightSymbols() {
		t.Errorf("default symbols = %+v, want light", s.Symbols)
	}
	if s.Padding != (Padding{}) {
		t.Errorf("default padding = %+v, want zero", s.Padding)
	}
	if s.WidthSet {
		t.Error("new banner should not have an explicit width")
	}
	if n := len(b.Lines()); n != 0 {
		t.Errorf("new banner has %d lines, want 0", n)
	}
}

func TestBuilderAppendsInOrder(t *testing.T) {
	b := New().
		TextString("a").
		Divider().
		DividerWith('=').
		Newline().
		Blank().
		Append(TextLine(NewText("b")), DividerLine('*'))

	want := []Line{
		TextLine(NewText("a")),
		DividerLine('─'),
		DividerLine('='),
		DividerLine(' '),
		BlankLine(),
		TextLine(NewText("b")),
		DividerLine('*'),
	}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestDividerCapturesCurrentSymbols(t *testing.T) {
	b := New().Divider().Symbols(StrongSymbols()).Divider()
	lines := b.Lines()
	if lines[0].Glyph != '─' {
		t.Errorf("first divider glyph = %q, want '─'", lines[0].Glyph)
	}
	if lines[1].Glyph != '━' {
		t.Errorf("second divider glyph = %q, want '━'", lines[1].Glyph)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	b := New().TextString("a")
	lines := b.Lines()
	lines[0] = BlankLine()
	if b.Lines()[0].Kind != LineText {
		t.Error("modifying Lines() result changed the banner")
	}
}

func TestEffectiveWidth(t *testing.T) {
	b := New().Columns(func() int { return 57 })
	if got := b.EffectiveWidth(); got != 57 {
		t.Errorf("EffectiveWidth() = %d, want 57 from columns func", got)
	}
	b.Width(30)
	if got := b.EffectiveWidth(); got != 30 {
		t.Errorf("EffectiveWidth() = %d, want explicit 30", got)
	}
	if got := New().Columns(nil).EffectiveWidth(); got != 80 {
		t.Errorf("EffectiveWidth() without columns func = %d, want 80", got)
	}
}

func TestRenderUsesColumnsFunc(t *testing.T) {
	out := New().Columns(func() int { return 24 }).TextString("x").Render()
	for i, row := range strings.Split(out, "\n") {
		if n := len([]rune(row)); n != 24 {
			t.Errorf("row %d has %d columns, want 24", i, n)
		}
	}
}

// --- Validate tests ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		b       *Banner
		wantErr bool
	}{
		{"default padding", New().Width(3), false},
		{"too narrow", New().Width(2), true},
		{"padding fits", New().Width(5).Padding(NewPaddingHV(1, 0)), false},
		{"padding exceeds width", New().Width(4).Padding(NewPaddingHV(1, 0)), true},
		{"negative padding", New().Width(80).Padding(Padding{Top: -1}), true},
		{"terminal width", New().Columns(func() int { return 1 }), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestRenderChecked(t *testing.T) {
	out, err := New().Width(10).TextString("ok").RenderChecked()
	if err != nil {
		t.Fatalf("RenderChecked() error: %v", err)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("RenderChecked() = %q, want content", out)
	}

	out, err = New().Width(4).Padding(PaddingOne()).RenderChecked()
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("RenderChecked() error = %v, want ErrInvalidConfiguration", err)
	}
	if out != "" {
		t.Errorf("RenderChecked() output = %q on error, want empty", out)
	}
}

// --- Symbols tests ---

func TestSymbolsByName(t *testing.T) {
	tests := []struct {
		name    string
		want    BoxSymbols
		wantErr bool
	}{
		{"", LightSymbols(), false},
		{"light", LightSymbols(), false},
		{"Default", LightSymbols(), false},
		{"strong", StrongSymbols(), false},
		{" heavy ", StrongSymbols(), false},
		{"double", DoubleSymbols(), false},
		{"rounded", RoundedSymbols(), false},
		{"dashed", DashedSymbols(), false},
		{"ASCII", ASCIISymbols(), false},
		{"fancy", BoxSymbols{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SymbolsByName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SymbolsByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SymbolsByName(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSymbolNamesSorted(t *testing.T) {
	want := []string{"ascii", "dashed", "default", "double", "heavy", "light", "rounded", "strong"}
	if diff := cmp.Diff(want, SymbolNames()); diff != "" {
		t.Errorf("SymbolNames() mismatch (-want +got):\n%s", diff)
	}
}

// --- Text style tests ---

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in      string
		want    TextAlign
		wantErr bool
	}{
		{"", AlignLeft, false},
		{"left", AlignLeft, false},
		{"RIGHT", AlignRight, false},
		{"center", AlignCenter, false},
		{"centre", AlignCenter, false},
		{"middle", AlignLeft, true},
	}
	for _, tt := range tests {
		got, err := ParseAlign(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlign(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlign(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAlignString(t *testing.T) {
	for _, a := range []TextAlign{AlignLeft, AlignRight, AlignCenter} {
		back, err := ParseAlign(a.String())
		if err != nil || back != a {
			t.Errorf("ParseAlign(%q) = %v, %v; want %v", a.String(), back, err, a)
		}
	}
	if got := TextAlign(42).String(); got != "left" {
		t.Errorf("out-of-range String() = %q, want left", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"", DefaultColor, false},
		{"red", Red, false},
		{"BrightGreen", BrightGreen, false},
		{"bright_cyan", BrightCyan, false},
		{"bright blue", BrightBlue, false},
		{"#FF8800", "#ff8800", false},
		{"208", "208", false},
		{"256", "", true},
		{"#ff88", "", true},
		{"chartreuse", "", true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColorCode(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Black, "0"},
		{White, "7"},
		{BrightBlack, "8"},
		{BrightWhite, "15"},
		{"#00ff00", "#00ff00"},
		{"123", "123"},
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := tt.c.Code(); got != tt.want {
			t.Errorf("Color(%q).Code() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestTextModifiersReturnCopies(t *testing.T) {
	base := NewText("x")
	aligned := base.Align(AlignCenter)
	colored := aligned.Color(Red)

	if base.Style != DefaultTextStyle() {
		t.Errorf("base style changed to %+v", base.Style)
	}
	if aligned.Style.Color != DefaultColor || aligned.Style.Align != AlignCenter {
		t.Errorf("aligned style = %+v", aligned.Style)
	}
	if colored.Style != (TextStyle{Align: AlignCenter, Color: Red}) {
		t.Errorf("colored style = %+v", colored.Style)
	}
}

// --- Padding tests ---

func TestPaddingConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Padding
		want Padding
	}{
		{"one", PaddingOne(), Padding{1, 1, 1, 1}},
		{"all", NewPadding(3), Padding{3, 3, 3, 3}},
		{"negative clamped", NewPadding(-5), Padding{}},
		{"hv", NewPaddingHV(2, 1), Padding{Top: 1, Right: 2, Bottom: 1, Left: 2}},
		{"hv negative", NewPaddingHV(-1, -2), Padding{}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLineKindString(t *testing.T) {
	for kind, want := range map[LineKind]string{
		LineText:     "text",
		LineDivider:  "divider",
		LineBlank:    "blank",
		LineKind(-1): "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("LineKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
