package main

import (
	"strings"
	"testing"

	"github.com/raphi011/devcomment/internal/config"
)

func TestLanguageRows(t *testing.T) {
	t.Parallel()

	s := config.Default()
	s.AdditionalFormats = []config.AdditionalFormat{
		{LanguageID: "python", CommentSymbol: "#"},
		{LanguageID: "typescript", CommentSymbol: "///"},
		{LanguageID: "python", CommentSymbol: "##"},
	}

	rows := languageRows(s)
	if rows[0].id != "python" || rows[0].style.Wrap("x") != "# x" || rows[0].source != sourceConfig {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].id != "typescript" || rows[1].source != sourceConfig {
		t.Errorf("rows[1] = %+v", rows[1])
	}

	pythons := 0
	for _, r := range rows {
		if r.id == "python" {
			pythons++
		}
		if r.id == "typescript" && r.source != sourceConfig && r.source != sourceOverridden {
			t.Errorf("built-in typescript row source = %q, want overridden", r.source)
		}
		if r.id == "html" && r.source != sourceBuiltin {
			t.Errorf("html source = %q", r.source)
		}
	}
	if pythons != 1 {
		t.Errorf("python rows = %d, want 1 (first match wins)", pythons)
	}
}

func TestLanguagesCmd(t *testing.T) {
	ta := newTestApp(t, `[[additional_formats]]
language_id = "python"
comment_symbol = "#"
`)

	if err := ta.run("languages", "-C", t.TempDir()); err != nil {
		t.Fatalf("languages failed: %v", err)
	}
	out := ta.stdout.String()
	for _, want := range []string{"LANGUAGE", "python", "# text", "config", "<!-- text -->", "csharp", "built-in"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "python") > strings.Index(out, "html") {
		t.Errorf("configured languages should come first:\n%s", out)
	}
}

func TestLanguagesCmd_Filter(t *testing.T) {
	ta := newTestApp(t, "")

	if err := ta.run("languages", "-C", t.TempDir(), "html"); err != nil {
		t.Fatalf("languages failed: %v", err)
	}
	out := ta.stdout.String()
	if !strings.Contains(out, "html") || strings.Contains(out, "csharp") {
		t.Errorf("filtered output:\n%s", out)
	}
}

func TestLanguagesCmd_NoMatch(t *testing.T) {
	ta := newTestApp(t, "")

	if err := ta.run("languages", "-C", t.TempDir(), "zzz"); err != nil {
		t.Fatalf("languages failed: %v", err)
	}
	if ta.stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", ta.stdout.String())
	}
	if !strings.Contains(ta.stderr.String(), `No languages match "zzz"`) {
		t.Errorf("stderr = %q", ta.stderr.String())
	}
}
