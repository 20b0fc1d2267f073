package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultCommentFormat = "{date}:"
	DefaultDateFormat    = "yyyyMMdd"
	DefaultBranchBackend = "git"
)

// EnvConfigPath overrides the global config file location.
const EnvConfigPath = "DEVCOMMENT_CONFIG"

// EnvUser overrides the configured user.
const EnvUser = "DEVCOMMENT_USER"

// AdditionalFormat maps a language id to a comment symbol.
type AdditionalFormat struct {
	LanguageID    string `toml:"language_id" yaml:"language_id"`
	CommentSymbol string `toml:"comment_symbol" yaml:"comment_symbol"`
}

// Settings is an immutable snapshot of the configuration for one request.
type Settings struct {
	CommentFormat     string             `toml:"comment_format" yaml:"comment_format"`
	User              string             `toml:"user" yaml:"user"`
	DateFormat        string             `toml:"date_format" yaml:"date_format"`
	PartialBranch     string             `toml:"partial_branch" yaml:"partial_branch"` // regex, empty = whole branch
	MoveToEnd         bool               `toml:"move_to_end" yaml:"move_to_end"`
	BranchBackend     string             `toml:"branch_backend" yaml:"branch_backend"`
	UserFromGit       bool               `toml:"user_from_git" yaml:"user_from_git"`
	AdditionalFormats []AdditionalFormat `toml:"additional_formats" yaml:"additional_formats"`
}

// Default returns the default settings
func Default() Settings {
	return Settings{
		CommentFormat: DefaultCommentFormat,
		DateFormat:    DefaultDateFormat,
		BranchBackend: DefaultBranchBackend,
	}
}

// withDefaults fills empty values with defaults.
func (s Settings) withDefaults() Settings {
	if s.CommentFormat == "" {
		s.CommentFormat = DefaultCommentFormat
	}
	if s.DateFormat == "" {
		s.DateFormat = DefaultDateFormat
	}
	if s.BranchBackend == "" {
		s.BranchBackend = DefaultBranchBackend
	}
	return s
}

// DefaultPath returns the global config path, honouring DEVCOMMENT_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "devcomment", "config.toml"), nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
	}
	return path, nil
}

// Load reads the global config file at path, or DefaultPath() if path is empty.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file cannot be parsed. Invalid
// values are repaired and reported while the remaining settings are kept.
func Load(path string) (Settings, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	} else {
		p, err := expandPath(path)
		if err != nil {
			return Default(), err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	return Decode(path, data)
}

// Decode parses config data, choosing the format from the file extension:
// .yaml/.yml are YAML, .json is VS Code settings.json, anything else is TOML.
// The result has defaults applied. Invalid fields are repaired (see Sanitize)
// and reported in the error alongside the otherwise decoded settings.
func Decode(name string, data []byte) (Settings, error) {
	s := Default()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", name, err)
		}
	case ".json":
		vs, _, err := DecodeVSCode(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", name, err)
		}
		s = vs
	default:
		if _, err := toml.Decode(string(data), &s); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", name, err)
		}
	}

	s, err := Sanitize(s.withDefaults())
	if err != nil {
		return s, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// EncodeTOML renders settings as a TOML document.
func EncodeTOML(s Settings) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return "", err
	}
	return buf.String(), nil
}
