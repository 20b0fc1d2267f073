package editor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/raphi011/devcomment/internal/log"
	"github.com/raphi011/devcomment/internal/storage"
)

// FileDocument is a Document backed by a file on disk.
//
// Insert re-reads the file while holding an exclusive lock, applies the edit
// and atomically replaces the file, so concurrent writers never see a
// half-written document.
type FileDocument struct {
	path        string
	languageID  string
	buf         buffer
	caret       Position
	LockTimeout time.Duration
}

// OpenFile loads path as a document with the caret at caret (clamped).
func OpenFile(path, languageID string, caret Position) (*FileDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d := &FileDocument{
		path:       path,
		languageID: languageID,
		buf:        buffer{text: string(data)},
	}
	d.caret = d.buf.clamp(caret)
	return d, nil
}

// Path returns the file path.
func (d *FileDocument) Path() string { return d.path }

func (d *FileDocument) LanguageID() string { return d.languageID }

func (d *FileDocument) Selection() Position { return d.caret }

func (d *FileDocument) LineText(line int) string { return d.buf.lineText(line) }

func (d *FileDocument) Caret() Position { return d.caret }

func (d *FileDocument) SetCaret(pos Position) { d.caret = d.buf.clamp(pos) }

// Text returns the document text as of the last load or edit.
func (d *FileDocument) Text() string { return d.buf.text }

// Insert writes text at pos into the file.
func (d *FileDocument) Insert(ctx context.Context, pos Position, text string) error {
	l := log.FromContext(ctx)
	start := time.Now()

	err := storage.WithLock(ctx, d.path, d.LockTimeout, func() error {
		data, err := os.ReadFile(d.path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", d.path, err)
		}
		buf := buffer{text: string(data)}
		caret := buf.insert(pos, text)

		if err := storage.WriteFileAtomic(d.path, []byte(buf.text), 0o644); err != nil {
			return err
		}
		d.buf = buf
		d.caret = caret
		return nil
	})
	if err != nil {
		return err
	}

	l.Debug("inserted", "file", d.path, "line", pos.Line, "col", pos.Character, "took", time.Since(start).Round(time.Millisecond))
	return nil
}
