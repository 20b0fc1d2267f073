package comment

import (
	"context"
	"time"

	"github.com/raphi011/devcomment/internal/config"
	"github.com/raphi011/devcomment/internal/datefmt"
	"github.com/raphi011/devcomment/internal/git"
	"github.com/raphi011/devcomment/internal/log"
)

// Resolver turns the configured template into a finished comment.
type Resolver struct {
	// Settings returns a fresh snapshot for each request.
	// Nil uses config.Default().
	Settings func() config.Settings

	// Branches looks up the current branch. Nil behaves like a missing
	// workspace and resolves branch placeholders to "".
	Branches git.BranchProvider

	// WorkDir is the directory whose branch is used.
	WorkDir string

	// Now defaults to time.Now.
	Now func() time.Time
}

// Resolve returns the comment for languageID.
// It never fails: missing settings use defaults and branch lookup failures
// resolve to empty values.
func (r *Resolver) Resolve(ctx context.Context, languageID string) string {
	s := config.Default()
	if r.Settings != nil {
		s = r.Settings()
	}
	return r.Render(ctx, s, languageID)
}

// Render resolves a comment from an explicit settings snapshot.
func (r *Resolver) Render(ctx context.Context, s config.Settings, languageID string) string {
	l := log.FromContext(ctx)

	template := s.CommentFormat
	if template == "" {
		template = config.DefaultCommentFormat
	}
	if unknown := Unknown(template); len(unknown) > 0 {
		l.Debug("unknown placeholders left as-is", "placeholders", unknown)
	}

	v := Values{
		Date: r.date(ctx, s.DateFormat),
		User: s.User,
	}

	if needsBranch(template) {
		v.Branch = r.branch(ctx)
		partial, err := PartialBranch(v.Branch, s.PartialBranch)
		if err != nil {
			l.Debug("partial branch extraction failed", "error", err)
		}
		v.PartialBranch = partial
	}

	style, matched := StyleFor(languageID, s.AdditionalFormats)
	if !matched {
		l.Debug("no comment style", "lang", languageID)
	}

	// Override symbols are literal: only the template body is expanded.
	return style.Wrap(Expand(template, v))
}

func (r *Resolver) date(ctx context.Context, pattern string) string {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	if pattern == "" {
		pattern = datefmt.DefaultPattern
	}
	d, err := datefmt.Format(now, pattern)
	if err != nil {
		log.FromContext(ctx).Debug("date format failed, using default", "pattern", pattern, "error", err)
		return datefmt.MustFormat(now, datefmt.DefaultPattern)
	}
	return d
}

func (r *Resolver) branch(ctx context.Context) string {
	if r.Branches == nil {
		return ""
	}
	b, _ := git.Quiet(r.Branches).CurrentBranch(ctx, r.WorkDir)
	log.FromContext(ctx).Debug("branch", "dir", r.WorkDir, "branch", b)
	return b
}
