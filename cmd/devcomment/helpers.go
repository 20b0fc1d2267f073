package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/raphi011/devcomment/internal/comment"
	"github.com/raphi011/devcomment/internal/config"
	"github.com/raphi011/devcomment/internal/git"
	"github.com/raphi011/devcomment/internal/lang"
	"github.com/raphi011/devcomment/internal/log"
	"github.com/raphi011/devcomment/internal/ui/prompt"
)

// errCancelled is returned when the user aborts a prompt.
var errCancelled = errors.New("cancelled")

// resolveWorkDir returns --workdir, else the directory of file, else cwd.
func (a *app) resolveWorkDir(file string) (string, error) {
	switch {
	case a.workDir != "":
		return filepath.Abs(a.workDir)
	case file != "":
		abs, err := filepath.Abs(file)
		if err != nil {
			return "", err
		}
		return filepath.Dir(abs), nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return dir, nil
}

// loadSettings reads a fresh settings snapshot for workDir.
// Config problems are warnings: the best-effort snapshot is still used.
func (a *app) loadSettings(ctx context.Context, workDir string) (config.Settings, config.Sources) {
	l := log.FromContext(ctx)
	s, src, err := config.Snapshot(a.configPath, workDir)
	if err != nil {
		l.Warn("%v", err)
	}
	l.Debug("settings loaded", "global", src.Global, "local", src.Local, "user", src.User)
	return s, src
}

// newResolver builds a resolver bound to one settings snapshot.
func (a *app) newResolver(s config.Settings, workDir string) *comment.Resolver {
	return &comment.Resolver{
		Settings: func() config.Settings { return s },
		Branches: git.NewBranches(s.BranchBackend),
		WorkDir:  workDir,
		Now:      a.now,
	}
}

// styledLanguages returns configured language ids followed by built-in ones,
// without duplicates, in lookup order.
func styledLanguages(s config.Settings) []string {
	var ids []string
	for _, f := range s.AdditionalFormats {
		if !slices.Contains(ids, f.LanguageID) {
			ids = append(ids, f.LanguageID)
		}
	}
	for _, b := range comment.BuiltinStyles() {
		for _, id := range b.LanguageIDs {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// languageFor picks the language id: --lang, then detection from file, then
// (with interactive) a prompt. Unknown ids are kept with a warning.
func (a *app) languageFor(ctx context.Context, explicit, file string, interactive bool, s config.Settings) (string, error) {
	l := log.FromContext(ctx)

	id := explicit
	if id == "" && file != "" {
		id = lang.Detect(file)
		l.Debug("detected language", "file", file, "lang", id)
	}

	if id == "" {
		if interactive {
			return a.pickLanguage(ctx, s)
		}
		if file != "" {
			l.Warn("cannot detect language of %s, comment is not wrapped (use --lang)", filepath.Base(file))
		}
		return "", nil
	}

	extra := styledLanguages(s)
	if !lang.IsKnown(id, extra...) {
		if suggestions := lang.Suggest(id, 3, extra...); len(suggestions) > 0 {
			l.Warn("unknown language %q, did you mean %s?", id, strings.Join(suggestions, ", "))
		} else {
			l.Warn("unknown language %q", id)
		}
	}
	return id, nil
}

// pickLanguage asks for a language id. Languages with a comment style come
// first and show the style as description.
func (a *app) pickLanguage(ctx context.Context, s config.Settings) (string, error) {
	if !a.canPrompt() {
		log.FromContext(ctx).Warn("interactive mode requires a terminal, comment is not wrapped")
		return "", nil
	}

	styled := styledLanguages(s)
	options := make([]prompt.Option, 0, len(styled))
	for _, id := range styled {
		style, _ := comment.StyleFor(id, s.AdditionalFormats)
		options = append(options, prompt.Option{Value: id, Description: style.Wrap("comment")})
	}
	for _, id := range lang.Known() {
		if !slices.Contains(styled, id) {
			options = append(options, prompt.Option{Value: id, Description: "no comment syntax"})
		}
	}

	result, err := a.pick("Language", options)
	if err != nil {
		return "", err
	}
	if result.Cancelled {
		return "", errCancelled
	}
	return result.Value, nil
}

// copyToClipboard copies text; failures are warnings.
func (a *app) copyToClipboard(ctx context.Context, text string) {
	l := log.FromContext(ctx)
	if err := a.copy(text); err != nil {
		l.Warn("failed to copy to clipboard: %v", err)
		return
	}
	l.Debug("copied to clipboard", "chars", len([]rune(text)))
}
