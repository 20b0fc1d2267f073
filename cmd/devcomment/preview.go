package main

import (
	"slices"
	"strings"

	"github.com/raphi011/devcomment/internal/editor"
	"github.com/raphi011/devcomment/internal/output"
	"github.com/raphi011/devcomment/internal/ui/styles"
)

// printPreview prints the edited line of doc. end is the caret right after
// the insertion of inserted characters; caret is the final caret.
// Styled output highlights the inserted text and the caret, plain output
// marks the caret with a ^ on the next line.
func printPreview(out *output.Printer, doc *editor.MemoryDocument, end editor.Position, inserted int, caret editor.Position) {
	line := []rune(strings.TrimRight(doc.LineText(caret.Line), "\r\n"))
	start := max(end.Character-inserted, 0)
	if end.Line != caret.Line {
		start, inserted = end.Character, 0
	}
	stop := min(start+inserted, len(line))

	if !out.Styled() {
		out.Println(string(line))
		out.Println(strings.Repeat(" ", min(caret.Character, len(line))) + "^")
		return
	}

	// Cut the line where the style changes and render each piece once.
	cuts := []int{0, start, stop, caret.Character, caret.Character + 1, len(line)}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var b strings.Builder
	for i := 0; i+1 < len(cuts); i++ {
		from, to := cuts[i], min(cuts[i+1], len(line))
		if from >= to {
			continue
		}
		style := styles.MutedStyle
		switch {
		case from == caret.Character:
			style = styles.CaretStyle
		case from >= start && to <= stop:
			style = styles.InsertedStyle
		}
		b.WriteString(out.Render(style, string(line[from:to])))
	}
	if caret.Character >= len(line) {
		b.WriteString(out.Render(styles.CaretStyle, " "))
	}
	out.Println(b.String())
}
