// Package lang maps file names to editor language ids.
//
// Ids follow the VS Code language identifiers ("typescriptreact", "csharp",
// "shellscript", ...), which are also the ids used in comment styles and
// additional_formats.
package lang

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

var byExtension = map[string]string{
	".bat":    "bat",
	".c":      "c",
	".h":      "c",
	".cc":     "cpp",
	".cpp":    "cpp",
	".hpp":    "cpp",
	".cs":     "csharp",
	".css":    "css",
	".dart":   "dart",
	".go":     "go",
	".htm":    "html",
	".html":   "html",
	".ini":    "ini",
	".java":   "java",
	".js":     "javascript",
	".cjs":    "javascript",
	".mjs":    "javascript",
	".jsx":    "javascriptreact",
	".json":   "json",
	".kt":     "kotlin",
	".lua":    "lua",
	".md":     "markdown",
	".php":    "php",
	".ps1":    "powershell",
	".py":     "python",
	".rb":     "ruby",
	".rs":     "rust",
	".scss":   "scss",
	".sh":     "shellscript",
	".bash":   "shellscript",
	".zsh":    "shellscript",
	".sql":    "sql",
	".swift":  "swift",
	".toml":   "toml",
	".ts":     "typescript",
	".mts":    "typescript",
	".cts":    "typescript",
	".tsx":    "typescriptreact",
	".vue":    "vue",
	".xml":    "xml",
	".xsd":    "xml",
	".svg":    "xml",
	".csproj": "xml",
	".yaml":   "yaml",
	".yml":    "yaml",
	".zig":    "zig",
}

var byName = map[string]string{
	"Dockerfile":  "dockerfile",
	"Makefile":    "makefile",
	"makefile":    "makefile",
	"GNUmakefile": "makefile",
}

// Detect returns the language id for a file name, or "" if unknown.
func Detect(path string) string {
	base := filepath.Base(path)
	if id, ok := byName[base]; ok {
		return id
	}
	return byExtension[strings.ToLower(filepath.Ext(base))]
}

// Known returns every language id Detect can produce, sorted.
func Known() []string {
	seen := make(map[string]bool)
	for _, id := range byExtension {
		seen[id] = true
	}
	for _, id := range byName {
		seen[id] = true
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsKnown reports whether id is one of Known() or extra.
func IsKnown(id string, extra ...string) bool {
	return slices.Contains(extra, id) || slices.Contains(Known(), id)
}

// Filter returns the candidates matching pattern, best match first.
// An empty pattern returns candidates unchanged.
func Filter(pattern string, candidates []string) []string {
	if pattern == "" {
		return slices.Clone(candidates)
	}
	matches := fuzzy.Find(pattern, candidates)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

// Suggest returns up to limit known ids (plus extra) similar to id.
func Suggest(id string, limit int, extra ...string) []string {
	candidates := Known()
	for _, e := range extra {
		if !slices.Contains(candidates, e) {
			candidates = append(candidates, e)
		}
	}
	out := Filter(id, candidates)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
