package editor

import (
	"strings"
	"unicode/utf8"
)

// buffer is document text addressed by Position.
type buffer struct {
	text string
}

// lines splits the text keeping each line's terminator.
// There is always at least one (possibly empty) line.
func (b *buffer) lines() []string {
	return strings.SplitAfter(b.text, "\n")
}

func (b *buffer) lineCount() int {
	return strings.Count(b.text, "\n") + 1
}

func (b *buffer) lineText(line int) string {
	lines := b.lines()
	if line < 0 || line >= len(lines) {
		return ""
	}
	return trimEOL(lines[line])
}

// clamp moves pos inside the document: lines past the end go to the last
// line, columns past the end of a line go to its end.
func (b *buffer) clamp(pos Position) Position {
	lines := b.lines()
	pos.Line = min(max(pos.Line, 0), len(lines)-1)
	width := utf8.RuneCountInString(trimEOL(lines[pos.Line]))
	pos.Character = min(max(pos.Character, 0), width)
	return pos
}

// offset returns the byte offset of a clamped position.
func (b *buffer) offset(pos Position) int {
	lines := b.lines()
	off := 0
	for _, l := range lines[:pos.Line] {
		off += len(l)
	}
	line := lines[pos.Line]
	col := 0
	for i := range line {
		if col == pos.Character {
			return off + i
		}
		col++
	}
	return off + len(line)
}

// insert adds text at pos and returns the position just after it.
func (b *buffer) insert(pos Position, text string) Position {
	pos = b.clamp(pos)
	off := b.offset(pos)
	b.text = b.text[:off] + text + b.text[off:]
	return advance(pos, text)
}

// advance returns the position after text when it is written at pos.
func advance(pos Position, text string) Position {
	if n := strings.Count(text, "\n"); n > 0 {
		last := text[strings.LastIndex(text, "\n")+1:]
		return Position{Line: pos.Line + n, Character: utf8.RuneCountInString(last)}
	}
	return Position{Line: pos.Line, Character: pos.Character + utf8.RuneCountInString(text)}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
