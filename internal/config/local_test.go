package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadLocal_NoFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	local, path, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local != nil || path != "" {
		t.Fatalf("expected nil, got %+v (%q)", local, path)
	}
}

func TestLoadLocal_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, LocalConfigFileName), "")

	local, _, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local == nil {
		t.Fatal("expected non-nil local config for empty file")
	}
}

func TestLoadLocal_AllFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, LocalConfigFileName), `
comment_format = "{branch}: "
user = "repo-bot"
date_format = "yyyy"
partial_branch = ""
move_to_end = true
branch_backend = "native"
user_from_git = true

[[additional_formats]]
language_id = "python"
comment_symbol = "##"
`)

	local, path, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, LocalConfigFileName) {
		t.Errorf("path = %q", path)
	}
	if local.CommentFormat != "{branch}: " || local.User != "repo-bot" || local.DateFormat != "yyyy" {
		t.Errorf("strings = %+v", local)
	}
	if local.PartialBranch == nil || *local.PartialBranch != "" {
		t.Errorf("PartialBranch = %v, want explicit empty", local.PartialBranch)
	}
	if local.MoveToEnd == nil || !*local.MoveToEnd {
		t.Errorf("MoveToEnd = %v, want true", local.MoveToEnd)
	}
	if local.UserFromGit == nil || !*local.UserFromGit {
		t.Errorf("UserFromGit = %v, want true", local.UserFromGit)
	}
	if local.BranchBackend != "native" {
		t.Errorf("BranchBackend = %q", local.BranchBackend)
	}
	if len(local.AdditionalFormats) != 1 || local.AdditionalFormats[0].CommentSymbol != "##" {
		t.Errorf("AdditionalFormats = %+v", local.AdditionalFormats)
	}
}

func TestLoadLocal_SyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, LocalConfigFileName), `move_to_end = maybe`)

	local, _, err := LoadLocal(dir)
	if err == nil || !strings.Contains(err.Error(), "failed to parse local config") {
		t.Errorf("LoadLocal() error = %v, want parse error", err)
	}
	if local != nil {
		t.Errorf("LoadLocal() = %+v, want nil on parse error", local)
	}
}

func TestLoadLocal_InvalidValuesKeepOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
		check   func(t *testing.T, l *LocalSettings)
	}{
		{
			name:    "backend",
			content: `branch_backend = "bzr"`,
			wantErr: "invalid branch_backend",
			check: func(t *testing.T, l *LocalSettings) {
				if l.BranchBackend != "" {
					t.Errorf("BranchBackend = %q, want cleared", l.BranchBackend)
				}
			},
		},
		{
			name:    "regex",
			content: `partial_branch = "(("`,
			wantErr: "invalid partial_branch",
			check: func(t *testing.T, l *LocalSettings) {
				if l.PartialBranch == nil || *l.PartialBranch != "((" {
					t.Errorf("PartialBranch = %v, want kept", l.PartialBranch)
				}
			},
		},
		{
			name:    "format",
			content: "[[additional_formats]]\ncomment_symbol = \"#\"\n\n[[additional_formats]]\nlanguage_id = \"lua\"\ncomment_symbol = \"--\"",
			wantErr: "language_id must not be empty",
			check: func(t *testing.T, l *LocalSettings) {
				if len(l.AdditionalFormats) != 1 || l.AdditionalFormats[0].LanguageID != "lua" {
					t.Errorf("AdditionalFormats = %+v, want only lua", l.AdditionalFormats)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, LocalConfigFileName), "comment_format = \"{user}\"\n"+tt.content)

			local, _, err := LoadLocal(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("LoadLocal() error = %v, want it to contain %q", err, tt.wantErr)
			}
			if local == nil || local.CommentFormat != "{user}" {
				t.Fatalf("LoadLocal() = %+v, want overlay kept", local)
			}
			tt.check(t, local)
		})
	}
}

func TestFindLocal(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	repo := filepath.Join(outer, "repo")
	sub := filepath.Join(repo, "src", "pkg")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	// Files above the repository root are never picked up.
	writeFile(t, filepath.Join(outer, LocalConfigFileName), "user = \"outer\"\n")
	if got := FindLocal(sub); got != "" {
		t.Errorf("FindLocal() = %q, want none above repo root", got)
	}

	atRoot := filepath.Join(repo, LocalConfigFileName)
	writeFile(t, atRoot, "")
	if got := FindLocal(sub); got != atRoot {
		t.Errorf("FindLocal() = %q, want %q", got, atRoot)
	}

	nearer := filepath.Join(repo, "src", LocalConfigFileName)
	writeFile(t, nearer, "")
	if got := FindLocal(sub); got != nearer {
		t.Errorf("FindLocal() = %q, want nearest %q", got, nearer)
	}

	if got := FindLocal(""); got != "" {
		t.Errorf("FindLocal(\"\") = %q", got)
	}
}
