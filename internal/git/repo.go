package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindRoot walks up from dir to the nearest directory containing a .git entry
// (a directory for regular clones, a file for linked worktrees).
// Returns false if dir is not inside a working tree.
func FindRoot(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Lstat(filepath.Join(abs, ".git")); err == nil {
			return abs, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}

// GitDir returns the directory holding the repository config for the
// working tree at root. For linked worktrees the "gitdir:" file is followed
// and then the worktree's commondir, so the shared config is returned.
func GitDir(root string) (string, error) {
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", fmt.Errorf("failed to stat .git: %w", err)
	}
	if info.IsDir() {
		return dotGit, nil
	}

	gitdir, err := readGitdirFile(dotGit)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(root, gitdir)
	}
	gitdir = filepath.Clean(gitdir)

	// Linked worktrees keep their own HEAD but share config via commondir.
	common, err := os.ReadFile(filepath.Join(gitdir, "commondir"))
	if err != nil {
		return gitdir, nil
	}
	commonDir := strings.TrimSpace(string(common))
	if !filepath.IsAbs(commonDir) {
		commonDir = filepath.Join(gitdir, commonDir)
	}
	return filepath.Clean(commonDir), nil
}

// readGitdirFile parses a ".git" file of the form "gitdir: <path>".
// Only the first line matters.
func readGitdirFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	if !strings.HasPrefix(line, "gitdir: ") {
		return "", fmt.Errorf("invalid .git file format: expected 'gitdir: <path>'")
	}

	gitdir := strings.TrimPrefix(line, "gitdir: ")
	if gitdir == "" {
		return "", fmt.Errorf("invalid .git file format: empty gitdir path")
	}
	return gitdir, nil
}
