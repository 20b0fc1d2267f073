package config

import (
	"errors"
	"os"

	"github.com/raphi011/devcomment/internal/git"
)

// Sources records where a snapshot's values came from.
type Sources struct {
	Global string // global config path ("" when the defaults were used)
	Local  string // .devcomment.toml path, if any
	User   string // "config", "env", "git" or ""
}

// Snapshot builds the effective settings for a request in workDir:
// global config, then the repo-local overlay, then DEVCOMMENT_USER, then
// (when enabled and still empty) git's user.name.
//
// Errors from individual sources are joined and returned alongside
// best-effort settings, so callers can warn and continue.
func Snapshot(globalPath, workDir string) (Settings, Sources, error) {
	var (
		src  Sources
		errs []error
	)

	s, err := Load(globalPath)
	if err != nil {
		errs = append(errs, err)
	}
	if p, perr := resolvedPath(globalPath); perr == nil {
		if _, serr := os.Stat(p); serr == nil {
			src.Global = p
		}
	}

	local, localPath, err := LoadLocal(workDir)
	if err != nil {
		errs = append(errs, err)
	}
	if local != nil {
		s = MergeLocal(s, local)
		src.Local = localPath
	}

	if s.User != "" {
		src.User = "config"
	}
	if u := os.Getenv(EnvUser); u != "" {
		s.User = u
		src.User = "env"
	}
	if s.User == "" && s.UserFromGit {
		root, _ := git.FindRoot(workDir)
		if name := git.UserName(root); name != "" {
			s.User = name
			src.User = "git"
		}
	}

	return s, src, errors.Join(errs...)
}

func resolvedPath(path string) (string, error) {
	if path == "" {
		return DefaultPath()
	}
	return expandPath(path)
}
