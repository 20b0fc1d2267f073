// Package config loads devcomment settings.
//
// Settings are read fresh for every command invocation, so edits to the
// config file take effect on the next comment without restarting anything.
//
// # Configuration Sources (highest priority first)
//
//   - DEVCOMMENT_USER env var: overrides user
//   - .devcomment.toml found by walking up from the working directory to the
//     repository root (per-repo overrides)
//   - Global config file: ~/.config/devcomment/config.toml, or the path in
//     DEVCOMMENT_CONFIG or --config
//   - Default values
//
// The global file may also be YAML (.yaml/.yml) or a VS Code settings.json
// (.json) using the "devComment.*" keys of the VS Code extension.
//
// # Key Settings
//
//   - comment_format: template, default "{date}:"
//   - user: value for {user}
//   - date_format: pattern for {date}, default "yyyyMMdd"
//   - partial_branch: regular expression extracting {partialBranch} from the branch
//   - move_to_end: insert at the end of non-empty lines
//   - branch_backend: "git" (git CLI) or "native" (go-git)
//   - user_from_git: fall back to git's user.name when user is empty
//
// # Additional Formats
//
// Per-language comment symbols, first match wins:
//
//	[[additional_formats]]
//	language_id = "python"
//	comment_symbol = "#"
//
// Missing files are not an error. Malformed files are reported and defaults
// are used instead.
package config
