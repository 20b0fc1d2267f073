package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/raphi011/devcomment/internal/config"
	"github.com/raphi011/devcomment/internal/ui/prompt"
)

var fixedNow = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

// testApp is an app with captured output, a fixed clock and no terminal.
type testApp struct {
	*app
	stdout, stderr bytes.Buffer
	copied         []string
}

// newTestApp isolates the environment and writes configTOML (if non-empty)
// to a temp config file passed via --config.
func newTestApp(t *testing.T, configTOML string) *testApp {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(config.EnvUser, "")
	t.Setenv(config.EnvConfigPath, "")

	ta := &testApp{}
	ta.app = &app{
		configPath: filepath.Join(home, "config.toml"),
		now:        func() time.Time { return fixedNow },
		copy: func(text string) error {
			ta.copied = append(ta.copied, text)
			return nil
		},
		pick: func(string, []prompt.Option) (prompt.SelectResult, error) {
			return prompt.SelectResult{}, errors.New("unexpected prompt")
		},
		ask: func(string, string, string) (prompt.TextInputResult, error) {
			return prompt.TextInputResult{}, errors.New("unexpected prompt")
		},
		confirm: func(prompt.Question) (prompt.ConfirmResult, error) {
			return prompt.ConfirmResult{}, errors.New("unexpected prompt")
		},
		canPrompt: func() bool { return false },
	}
	ta.app.stdout = &ta.stdout
	ta.app.stderr = &ta.stderr

	if configTOML != "" {
		writeFile(t, ta.configPath, configTOML)
	}
	return ta
}

// run executes the root command with args and the test config file.
func (ta *testApp) run(args ...string) error {
	configPath := ta.configPath
	cmd := newRootCmd(ta.app)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	cmd.SetOut(&ta.stdout)
	cmd.SetErr(&ta.stderr)
	return cmd.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// initRepo creates a git repository in dir with HEAD on branch.
func initRepo(t *testing.T, dir, branch string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	for _, args := range [][]string{
		{"init", "-q"},
		{"symbolic-ref", "HEAD", "refs/heads/" + branch},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
}
