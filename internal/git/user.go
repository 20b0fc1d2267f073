package git

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// configFiles lists the git config files consulted for user.name, lowest
// precedence first. Missing files are skipped by the loader.
func configFiles(root string) []string {
	var files []string

	xdg := os.Getenv("XDG_CONFIG_HOME")
	home, err := os.UserHomeDir()
	if xdg == "" && err == nil {
		xdg = filepath.Join(home, ".config")
	}
	if xdg != "" {
		files = append(files, filepath.Join(xdg, "git", "config"))
	}
	if err == nil {
		files = append(files, filepath.Join(home, ".gitconfig"))
	}
	if root != "" {
		if gitDir, err := GitDir(root); err == nil {
			files = append(files, filepath.Join(gitDir, "config"))
		}
	}
	return files
}

// UserName returns user.name from the global and repository git config,
// the repository value winning. root may be empty to read only global files.
// Returns "" if no name is configured or the files cannot be parsed.
func UserName(root string) string {
	files := configFiles(root)
	if len(files) == 0 {
		return ""
	}

	others := make([]any, 0, len(files)-1)
	for _, f := range files[1:] {
		others = append(others, f)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		Loose:                   true,
		Insensitive:             true,
		AllowBooleanKeys:        true,
		SkipUnrecognizableLines: true,
	}, files[0], others...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cfg.Section("user").Key("name").String())
}
