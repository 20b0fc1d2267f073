package editor

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/raphi011/devcomment/internal/log"
)

// ClosingWidth is the width of the " -->" delimiter that trails bracketed
// comments.
const ClosingWidth = 4

// bracketedLanguages close their comments after the text.
var bracketedLanguages = []string{"html", "xml"}

// IsBracketed reports whether the caret is moved back inside the comment
// after inserting into a document of languageID.
func IsBracketed(languageID string) bool {
	return slices.Contains(bracketedLanguages, languageID)
}

// Placement inserts resolved comments into the active document.
type Placement struct {
	Editor Editor
	// MoveToEnd inserts at the end of non-empty lines, separated by a space.
	MoveToEnd bool
}

// Insert writes text at the active document's selection and returns the
// number of characters inserted. With no active document nothing happens
// and 0 is returned.
func (p *Placement) Insert(ctx context.Context, text string) (int, error) {
	doc := p.document()
	if doc == nil {
		log.FromContext(ctx).Debug("no active document, skipping insert")
		return 0, nil
	}

	pos := doc.Selection()
	if p.MoveToEnd {
		line := doc.LineText(pos.Line)
		if strings.TrimSpace(line) != "" {
			pos.Character = utf8.RuneCountInString(line)
			text = " " + text
		}
	}

	if err := doc.Insert(ctx, pos, text); err != nil {
		return 0, err
	}
	return utf8.RuneCountInString(text), nil
}

// Reposition moves the caret back inside the closing delimiter of bracketed
// comments (html, xml). Other languages, and a missing document, are left
// untouched. The caret never moves back further than inserted characters.
func (p *Placement) Reposition(ctx context.Context, inserted int) {
	doc := p.document()
	if doc == nil || !IsBracketed(doc.LanguageID()) {
		return
	}

	caret := doc.Caret()
	back := min(ClosingWidth, max(inserted, 0), caret.Character)
	caret.Character -= back
	doc.SetCaret(caret)

	log.FromContext(ctx).Debug("caret moved", "lang", doc.LanguageID(), "line", caret.Line, "col", caret.Character)
}

func (p *Placement) document() Document {
	if p.Editor == nil {
		return nil
	}
	return p.Editor.ActiveDocument()
}
