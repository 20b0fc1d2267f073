// Package output provides context-aware output for devcomment.
// Stdout is used for primary data output (comments, caret positions, previews).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	raw    io.Writer // as passed in
	w      io.Writer // colorprofile writer, downsamples or strips ANSI for raw
	styled bool
}

// New creates a new Printer writing to the given writer.
// Styling is enabled when w is a terminal; otherwise escape sequences in
// printed text are stripped.
func New(w io.Writer) *Printer {
	return &Printer{
		raw:    w,
		w:      colorprofile.NewWriter(w, os.Environ()),
		styled: IsTerminal(w),
	}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styled reports whether Render applies styles.
func (p *Printer) Styled() bool {
	return p.styled
}

// SetStyled forces styling on or off.
func (p *Printer) SetStyled(styled bool) {
	p.styled = styled
}

// Render applies style to s when styling is enabled.
func (p *Printer) Render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.raw
}
