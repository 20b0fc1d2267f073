package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultConfig is the template for devcomment config init
const defaultConfig = `# devcomment configuration
# Place this file at ~/.config/devcomment/config.toml
# (or point DEVCOMMENT_CONFIG at another location)

# Comment template. Available tokens:
#   {date}          - current date, rendered with date_format
#   {user}          - the user setting below
#   {branch}        - current git branch
#   {partialBranch} - part of the branch matched by partial_branch
#                     ({identifier} is accepted as an alias)
comment_format = "{date}:"

# Name inserted for {user}.
# DEVCOMMENT_USER overrides this value.
# user = "alice"

# Take {user} from git config user.name when user is empty.
# user_from_git = false

# Date pattern using Unicode letters (yyyy, MM, dd, HH, mm, ...),
# or strftime when the pattern contains a % (e.g. "%Y-%m-%d").
date_format = "yyyyMMdd"

# Regular expression applied to the branch name for {partialBranch}.
# The first match is used; no match inserts nothing.
# Empty uses the whole branch name.
# partial_branch = "PROJ-\\d+"

# Move the cursor to the end of the line before inserting.
move_to_end = false

# How the current branch is looked up:
#   "git"    - run the git CLI (default)
#   "native" - read the repository in-process
branch_backend = "git"

# Comment symbols for languages without built-in wrapping.
# Entries are checked in order and take precedence over built-ins.
#
# [[additional_formats]]
# language_id = "python"
# comment_symbol = "#"
#
# [[additional_formats]]
# language_id = "sql"
# comment_symbol = "--"
`

// DefaultConfig returns the default configuration template content
func DefaultConfig() string {
	return defaultConfig
}

// DefaultConfigFor returns the template with user set, if non-empty.
func DefaultConfigFor(user string) string {
	if user == "" {
		return defaultConfig
	}
	return strings.Replace(defaultConfig, `# user = "alice"`, fmt.Sprintf("user = %q", user), 1)
}

// Init creates a default config file at path, or DefaultPath() if empty.
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(path string, force bool) (string, error) {
	return InitUser(path, "", force)
}

// InitUser is Init with the user setting filled in.
func InitUser(path, user string, force bool) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	return writeTemplate(path, DefaultConfigFor(user), force)
}

// InitLocal creates a .devcomment.toml in dir.
func InitLocal(dir string, force bool) (string, error) {
	return writeTemplate(filepath.Join(dir, LocalConfigFileName), defaultLocalConfig, force)
}

func writeTemplate(path, content string, force bool) (string, error) {
	path, err := expandPath(path)
	if err != nil {
		return "", err
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}

	return path, nil
}
