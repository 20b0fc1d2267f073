package editor

import "context"

// MemoryDocument is a Document held in memory.
type MemoryDocument struct {
	languageID string
	buf        buffer
	caret      Position
}

// NewMemoryDocument creates a document with the caret at caret (clamped).
func NewMemoryDocument(languageID, text string, caret Position) *MemoryDocument {
	d := &MemoryDocument{languageID: languageID, buf: buffer{text: text}}
	d.caret = d.buf.clamp(caret)
	return d
}

func (d *MemoryDocument) LanguageID() string { return d.languageID }

func (d *MemoryDocument) Selection() Position { return d.caret }

func (d *MemoryDocument) LineText(line int) string { return d.buf.lineText(line) }

func (d *MemoryDocument) Insert(_ context.Context, pos Position, text string) error {
	d.caret = d.buf.insert(pos, text)
	return nil
}

func (d *MemoryDocument) Caret() Position { return d.caret }

func (d *MemoryDocument) SetCaret(pos Position) { d.caret = d.buf.clamp(pos) }

// Text returns the full document text.
func (d *MemoryDocument) Text() string { return d.buf.text }

// LineCount returns the number of lines.
func (d *MemoryDocument) LineCount() int { return d.buf.lineCount() }
