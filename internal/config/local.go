package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/devcomment/internal/git"
)

// LocalConfigFileName is the per-repo override file.
const LocalConfigFileName = ".devcomment.toml"

// LocalSettings holds per-repo overrides from .devcomment.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalSettings struct {
	CommentFormat     string             `toml:"comment_format"`
	User              string             `toml:"user"`
	DateFormat        string             `toml:"date_format"`
	PartialBranch     *string            `toml:"partial_branch"` // "" clears a global pattern
	MoveToEnd         *bool              `toml:"move_to_end"`
	BranchBackend     string             `toml:"branch_backend"`
	UserFromGit       *bool              `toml:"user_from_git"`
	AdditionalFormats []AdditionalFormat `toml:"additional_formats"` // placed before global entries
}

// FindLocal walks up from dir looking for .devcomment.toml, stopping at the
// repository root (or the filesystem root outside a repository).
// Returns "" if none is found.
func FindLocal(dir string) string {
	if dir == "" {
		return ""
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	root, inRepo := git.FindRoot(abs)

	for {
		candidate := filepath.Join(abs, LocalConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		if inRepo && abs == root {
			return ""
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
}

// LoadLocal reads the .devcomment.toml that applies to dir.
// Returns nil (no error) if there is none.
// Parse failures return nil settings. Invalid values are reported in the
// error and removed from the returned settings.
func LoadLocal(dir string) (*LocalSettings, string, error) {
	path := FindLocal(dir)
	if path == "" {
		return nil, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", nil
		}
		return nil, path, fmt.Errorf("failed to read local config %s: %w", path, err)
	}

	var local LocalSettings
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, path, fmt.Errorf("failed to parse local config %s: %w", path, err)
	}

	// Invalid values are dropped so the rest of the overlay still applies.
	var errs []error
	if err := validateEnum(local.BranchBackend, "branch_backend", ValidBranchBackends); err != nil {
		errs = append(errs, err)
		local.BranchBackend = ""
	}
	if local.PartialBranch != nil {
		if err := ValidatePartialBranch(*local.PartialBranch); err != nil {
			errs = append(errs, err)
		}
	}
	formats, err := validFormats(local.AdditionalFormats)
	if err != nil {
		errs = append(errs, err)
	}
	local.AdditionalFormats = formats

	if err := errors.Join(errs...); err != nil {
		return &local, path, fmt.Errorf("local config %s: %w", path, err)
	}
	return &local, path, nil
}

// defaultLocalConfig is the template for devcomment config init --local
const defaultLocalConfig = `# devcomment local config (per-repo overrides)
# Place this file at the root of your repository.
# Settings here override the global config for this repo only.

# comment_format = "{date} {user}: {partialBranch}"
# partial_branch = "PROJ-\\d+"
# move_to_end = true

# Formats listed here are checked before the global ones.
# [[additional_formats]]
# language_id = "python"
# comment_symbol = "#"
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
