package editor

import "context"

// Position is a zero-based line and character offset.
type Position struct {
	Line      int
	Character int
}

// Document is the editing surface Placement needs.
type Document interface {
	// LanguageID identifies the document's language, e.g. "typescript".
	LanguageID() string
	// Selection returns the start of the current selection.
	Selection() Position
	// LineText returns the text of line without its line ending.
	LineText(line int) string
	// Insert adds text at pos as a single edit. The caret ends up directly
	// after the inserted text.
	Insert(ctx context.Context, pos Position, text string) error
	// Caret returns the current caret position.
	Caret() Position
	// SetCaret moves the caret.
	SetCaret(pos Position)
}

// Editor exposes the active document.
type Editor interface {
	// ActiveDocument returns nil when no document is open.
	ActiveDocument() Document
}

// EditorFunc adapts a function to Editor.
type EditorFunc func() Document

// ActiveDocument calls f.
func (f EditorFunc) ActiveDocument() Document {
	return f()
}

// Active returns an Editor whose active document is doc.
// A nil doc behaves like an editor with nothing open.
func Active(doc Document) Editor {
	return EditorFunc(func() Document { return doc })
}
