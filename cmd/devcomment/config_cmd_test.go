package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/devcomment/internal/config"
	"github.com/raphi011/devcomment/internal/ui/prompt"
)

func TestConfigInit(t *testing.T) {
	ta := newTestApp(t, "")

	if err := ta.run("config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if got := readFile(t, ta.configPath); got != config.DefaultConfig() {
		t.Errorf("config file does not match template")
	}
	if !strings.Contains(ta.stdout.String(), "Created config file: "+ta.configPath) {
		t.Errorf("stdout = %q", ta.stdout.String())
	}

	err := ta.run("config", "init")
	if err == nil || !strings.Contains(err.Error(), "already exists") || !strings.Contains(err.Error(), "-f") {
		t.Errorf("second init error = %v, want already exists hint", err)
	}

	if err := ta.run("config", "init", "-f"); err != nil {
		t.Errorf("config init -f failed: %v", err)
	}
}

func TestConfigInit_Stdout(t *testing.T) {
	ta := newTestApp(t, "")

	if err := ta.run("config", "init", "--stdout"); err != nil {
		t.Fatalf("config init --stdout failed: %v", err)
	}
	if ta.stdout.String() != config.DefaultConfig() {
		t.Error("stdout does not match template")
	}
	if _, err := os.Stat(ta.configPath); !os.IsNotExist(err) {
		t.Errorf("config file created with --stdout: %v", err)
	}
}

func TestConfigInit_Interactive(t *testing.T) {
	ta := newTestApp(t, "old = true\n")
	ta.canPrompt = func() bool { return true }
	ta.ask = func(_, _, _ string) (prompt.TextInputResult, error) {
		return prompt.TextInputResult{Value: "carol"}, nil
	}
	var asked prompt.Question
	ta.confirm = func(q prompt.Question) (prompt.ConfirmResult, error) {
		asked = q
		return prompt.ConfirmResult{Confirmed: true}, nil
	}

	if err := ta.run("config", "init", "-i"); err != nil {
		t.Fatalf("config init -i failed: %v", err)
	}

	s, err := config.Load(ta.configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.User != "carol" {
		t.Errorf("User = %q, want carol", s.User)
	}
	if asked.Title != "Replace config.toml?" || asked.Detail != ta.configPath {
		t.Errorf("question = %+v", asked)
	}
}

func TestConfigInit_InteractiveDeclined(t *testing.T) {
	ta := newTestApp(t, "old = true\n")
	ta.canPrompt = func() bool { return true }
	ta.ask = func(_, _, _ string) (prompt.TextInputResult, error) {
		return prompt.TextInputResult{Value: "carol"}, nil
	}
	ta.confirm = func(prompt.Question) (prompt.ConfirmResult, error) {
		return prompt.ConfirmResult{}, nil
	}

	if err := ta.run("config", "init", "-i"); err != errCancelled {
		t.Errorf("error = %v, want errCancelled", err)
	}
	if got := readFile(t, ta.configPath); got != "old = true\n" {
		t.Errorf("config overwritten: %q", got)
	}
}

func TestReplaceQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		content        string
		wantDetail     string
		wantDefaultYes bool
	}{
		{"untouched template", config.DefaultConfig(), "", true},
		{"user set", config.DefaultConfigFor("bob"), ` signs comments as "bob"`, false},
		{"custom format", "comment_format = \"{branch}\"\n", "", false},
		{"broken", "comment_format = [", " (has errors)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tt.content)

			q := replaceQuestion(path)
			if q.Title != "Replace config.toml?" {
				t.Errorf("Title = %q", q.Title)
			}
			if q.Detail != path+tt.wantDetail {
				t.Errorf("Detail = %q, want %q", q.Detail, path+tt.wantDetail)
			}
			if q.DefaultYes != tt.wantDefaultYes {
				t.Errorf("DefaultYes = %v, want %v", q.DefaultYes, tt.wantDefaultYes)
			}
		})
	}
}

func TestConfigInit_Local(t *testing.T) {
	ta := newTestApp(t, "")
	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(repo, "pkg")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	if err := ta.run("config", "init", "--local", "-C", sub); err != nil {
		t.Fatalf("config init --local failed: %v", err)
	}
	if got := readFile(t, filepath.Join(repo, ".devcomment.toml")); got != config.DefaultLocalConfig() {
		t.Error("local config does not match template")
	}

	outside := t.TempDir()
	if err := ta.run("config", "init", "--local", "-C", outside); err == nil {
		t.Error("config init --local outside a repository succeeded")
	}
}

func TestConfigShow(t *testing.T) {
	ta := newTestApp(t, `comment_format = "{date} {ticket}"
user = "alice"
`)
	if err := ta.run("config", "show", "-C", t.TempDir()); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	out := ta.stdout.String()
	for _, want := range []string{
		"# global: " + ta.configPath,
		"# local:  (none)",
		"# user:   config",
		`user = "alice"`,
		`comment_format = "{date} {ticket}"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(ta.stderr.String(), "{ticket}") {
		t.Errorf("stderr = %q, want unknown placeholder warning", ta.stderr.String())
	}
}

const vscodeSettings = `{
  // editor
  "editor.fontSize": 14,
  "devComment.commentFormat": "{date} {user}: {partialBranch}",
  "devComment.user": "alice",
  "devComment.identifier": "legacy",
  "devComment.additionalFormats": [
    { "languageId": "python", "commentSymbol": "#" }
  ]
}`

func TestConfigImport(t *testing.T) {
	ta := newTestApp(t, "")
	settings := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, settings, vscodeSettings)

	if err := ta.run("config", "import", settings); err != nil {
		t.Fatalf("config import failed: %v", err)
	}

	s, err := config.Load(ta.configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.CommentFormat != "{date} {user}: {partialBranch}" || s.User != "alice" {
		t.Errorf("imported settings = %+v", s)
	}
	if len(s.AdditionalFormats) != 1 || s.AdditionalFormats[0].CommentSymbol != "#" {
		t.Errorf("AdditionalFormats = %+v", s.AdditionalFormats)
	}
	if !strings.Contains(ta.stderr.String(), "devComment.identifier") {
		t.Errorf("stderr = %q, want skipped key warning", ta.stderr.String())
	}

	if err := ta.run("config", "import", settings); err == nil {
		t.Error("second import without -f succeeded")
	}
}

func TestConfigImport_Stdout(t *testing.T) {
	ta := newTestApp(t, "")
	settings := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, settings, vscodeSettings)

	if err := ta.run("config", "import", settings, "--stdout"); err != nil {
		t.Fatalf("config import --stdout failed: %v", err)
	}
	s, err := config.Decode("config.toml", ta.stdout.Bytes())
	if err != nil {
		t.Fatalf("stdout is not valid config: %v\n%s", err, ta.stdout.String())
	}
	if s.User != "alice" {
		t.Errorf("User = %q", s.User)
	}
	if _, err := os.Stat(ta.configPath); !os.IsNotExist(err) {
		t.Errorf("config file written with --stdout: %v", err)
	}
}

func TestConfigImport_Invalid(t *testing.T) {
	ta := newTestApp(t, "")
	settings := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, settings, `{"devComment.user": 42}`)

	err := ta.run("config", "import", settings)
	if err == nil || !strings.Contains(err.Error(), "expected string") {
		t.Errorf("error = %v, want type error", err)
	}
}
