package components

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapIndent(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		width      int
		initial    string
		subsequent string
		want       []string
	}{
		{
			name:  "greedy fill",
			text:  "the quick brown fox jumps",
			width: 10,
			want:  []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:       "indents count toward width",
			text:       "the quick brown fox jumps",
			width:      10,
			initial:    "> ",
			subsequent: "  ",
			want:       []string{"> the", "  quick", "  brown", "  fox", "  jumps"},
		},
		{
			name:  "leading spaces kept",
			text:  "   indented text here",
			width: 12,
			want:  []string{"   indented", "text here"},
		},
		{
			name:  "inner spaces kept",
			text:  "a  b",
			width: 10,
			want:  []string{"a  b"},
		},
		{
			name:  "trailing spaces dropped",
			text:  "trailing   ",
			width: 20,
			want:  []string{"trailing"},
		},
		{
			name:  "long word broken",
			text:  "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "wide characters broken by cell width",
			text:  "日本語テキスト",
			width: 6,
			want:  []string{"日本語", "テキス", "ト"},
		},
		{
			name:       "newlines start paragraphs",
			text:       "one\n\ntwo",
			width:      10,
			initial:    "|",
			subsequent: "|",
			want:       []string{"|one", "|", "|two"},
		},
		{
			name:       "empty text keeps the indent",
			text:       "",
			width:      10,
			initial:    "|",
			subsequent: "|",
			want:       []string{"|"},
		},
		{
			name:  "empty text without indent",
			text:  "",
			width: 10,
			want:  []string{""},
		},
		{
			name:       "first word wider than first row moves down",
			text:       "abcd",
			width:      6,
			initial:    "|    ",
			subsequent: "|",
			want:       []string{"|    ", "|abcd"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapIndent(tt.text, tt.width, tt.initial, tt.subsequent)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapIndent() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapIndentRowsFitWidth(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
		"tempor incididunt ut labore et dolore magna aliqua. 日本語のテキストも含む。"
	for width := 4; width <= 40; width++ {
		for _, row := range WrapIndent(text, width, "│ ", "│ ") {
			if n := VisibleLen(row); n > width {
				t.Errorf("width %d: row %q is %d cells", width, row, n)
			}
		}
	}
}

func TestSplitWords(t *testing.T) {
	got := splitWords("  ab cd  e")
	want := []wrapWord{
		{text: "", width: 0, space: "  ", spaceWidth: 2},
		{text: "ab", width: 2, space: " ", spaceWidth: 1},
		{text: "cd", width: 2, space: "  ", spaceWidth: 2},
		{text: "e", width: 1},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(wrapWord{})); diff != "" {
		t.Errorf("splitWords() mismatch (-want +got):\n%s", diff)
	}
}
