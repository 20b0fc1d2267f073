package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(s *Settings)
		wantErr string
	}{
		{"defaults", func(s *Settings) {}, ""},
		{"native backend", func(s *Settings) { s.BranchBackend = "native" }, ""},
		{"empty backend", func(s *Settings) { s.BranchBackend = "" }, ""},
		{"unknown backend", func(s *Settings) { s.BranchBackend = "hg" }, `must be "git" or "native"`},
		{"valid regex", func(s *Settings) { s.PartialBranch = `[A-Z]+-\d+` }, ""},
		{"invalid regex", func(s *Settings) { s.PartialBranch = `[A-Z` }, "invalid partial_branch"},
		{"format ok", func(s *Settings) {
			s.AdditionalFormats = []AdditionalFormat{{LanguageID: "go", CommentSymbol: "//"}}
		}, ""},
		{"format blank language", func(s *Settings) {
			s.AdditionalFormats = []AdditionalFormat{{LanguageID: "go"}, {LanguageID: "  "}}
		}, "additional_formats[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Default()
			tt.modify(&s)
			err := Validate(s)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}
	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %s, want %s", tt.opts, got, tt.want)
		}
	}
}
