package components

import "testing"

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"sgr escapes ignored", "\x1b[31mred\x1b[0m", 3},
		{"box drawing", "┌──┐", 4},
		{"cjk is double width", "日本", 4},
		{"emoji", "👍", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleLen(tt.in); got != tt.want {
				t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 5, "hello"},
		{"hello", 0, ""},
		{"hello", -1, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTruncateWithTail(t *testing.T) {
	if got := TruncateWithTail("hello world", 8, "..."); got != "hello..." {
		t.Errorf("TruncateWithTail() = %q, want %q", got, "hello...")
	}
	if got := TruncateWithTail("short", 8, "..."); got != "short" {
		t.Errorf("TruncateWithTail() = %q, want unchanged", got)
	}
	if got := TruncateWithTail("short", 0, "..."); got != "" {
		t.Errorf("TruncateWithTail(width 0) = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 2, "abcd"},
		{"日本", 5, "日本 "},
		{"\x1b[1mab\x1b[0m", 3, "\x1b[1mab\x1b[0m "},
		{"ab", -1, "ab"},
	}
	for _, tt := range tests {
		if got := PadRight(tt.in, tt.width); got != tt.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
