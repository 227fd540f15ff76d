package components

import (
	"strings"

	"github.com/rivo/uniseg"
)

// wrapWord is a run of non-space text followed by the spaces after it.
// Widths are in terminal cells.
type wrapWord struct {
	text       string
	width      int
	space      string
	spaceWidth int
}

// WrapIndent word-wraps text so that every returned row, indent included,
// is at most width cells wide. The first row starts with initialIndent and
// the others with subsequentIndent.
//
// Wrapping is greedy first-fit on ASCII spaces. Each "\n" in text starts a
// new paragraph. Leading spaces of a paragraph are kept, trailing spaces of
// every row are dropped, and a word wider than a row is split at grapheme
// boundaries. An empty paragraph produces a row holding only its indent.
func WrapIndent(text string, width int, initialIndent, subsequentIndent string) []string {
	var rows []string
	for _, para := range strings.Split(text, "\n") {
		rows = wrapParagraph(para, width, initialIndent, subsequentIndent, rows)
	}
	return rows
}

// wrapParagraph appends the rows of a single paragraph to rows.
func wrapParagraph(para string, width int, initialIndent, subsequentIndent string, rows []string) []string {
	firstIndent := subsequentIndent
	if len(rows) == 0 {
		firstIndent = initialIndent
	}
	firstWidth := max(width-VisibleLen(firstIndent), 0)
	restWidth := max(width-VisibleLen(subsequentIndent), 0)

	words := breakWords(splitWords(para), restWidth)
	if firstIndent != "" {
		// Words are broken to fit the subsequent width, so the first word
		// may not fit the first row; an empty leading word lets it move down.
		words = append([]wrapWord{{}}, words...)
	}

	for i, line := range firstFit(words, firstWidth, restWidth) {
		indent := subsequentIndent
		if len(rows) == 0 && i == 0 {
			indent = initialIndent
		}
		var b strings.Builder
		b.WriteString(indent)
		for j, w := range line {
			b.WriteString(w.text)
			if j < len(line)-1 {
				b.WriteString(w.space)
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// splitWords cuts s after each run of spaces. Leading spaces become the
// trailing space of an empty first word.
func splitWords(s string) []wrapWord {
	var words []wrapWord
	start := 0
	inSpace := false
	for i, r := range s {
		if inSpace && r != ' ' {
			words = append(words, newWrapWord(s[start:i]))
			start = i
		}
		inSpace = r == ' '
	}
	if start < len(s) {
		words = append(words, newWrapWord(s[start:]))
	}
	return words
}

func newWrapWord(s string) wrapWord {
	text := strings.TrimRight(s, " ")
	space := s[len(text):]
	return wrapWord{
		text:       text,
		width:      VisibleLen(text),
		space:      space,
		spaceWidth: len(space),
	}
}

// breakWords splits every word wider than limit into pieces of at most
// limit cells. Only the last piece keeps the trailing space.
func breakWords(words []wrapWord, limit int) []wrapWord {
	out := make([]wrapWord, 0, len(words))
	for _, w := range words {
		if w.width <= limit {
			out = append(out, w)
			continue
		}

		var piece strings.Builder
		pieceWidth := 0
		g := uniseg.NewGraphemes(w.text)
		for g.Next() {
			cw := g.Width()
			if pieceWidth > 0 && pieceWidth+cw > limit {
				out = append(out, wrapWord{text: piece.String(), width: pieceWidth})
				piece.Reset()
				pieceWidth = 0
			}
			piece.WriteString(g.Str())
			pieceWidth += cw
		}
		out = append(out, wrapWord{
			text:       piece.String(),
			width:      pieceWidth,
			space:      w.space,
			spaceWidth: w.spaceWidth,
		})
	}
	return out
}

// firstFit groups words into lines greedily. A word starts a new line when
// it would push the current line past its width; a line always holds at
// least one word.
func firstFit(words []wrapWord, firstWidth, restWidth int) [][]wrapWord {
	var lines [][]wrapWord
	start := 0
	used := 0
	for i, w := range words {
		limit := restWidth
		if len(lines) == 0 {
			limit = firstWidth
		}
		if used+w.width > limit && i > start {
			lines = append(lines, words[start:i])
			start = i
			used = 0
		}
		used += w.width + w.spaceWidth
	}
	return append(lines, words[start:])
}
