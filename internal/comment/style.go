package comment

import (
	"slices"

	"github.com/raphi011/devcomment/internal/config"
)

// Style is the text placed around a comment body.
type Style struct {
	Prefix string
	Suffix string
}

// Wrap returns body surrounded by the style's delimiters.
func (s Style) Wrap(body string) string {
	return s.Prefix + body + s.Suffix
}

// IsZero reports whether s leaves text unwrapped.
func (s Style) IsZero() bool {
	return s.Prefix == "" && s.Suffix == ""
}

// BuiltinStyle assigns a style to a set of language ids.
type BuiltinStyle struct {
	LanguageIDs []string
	Style       Style
}

var builtinStyles = []BuiltinStyle{
	{
		LanguageIDs: []string{"xml", "html"},
		Style:       Style{Prefix: "<!-- ", Suffix: " -->"},
	},
	{
		LanguageIDs: []string{"javascript", "javascriptreact", "typescript", "typescriptreact", "csharp"},
		Style:       Style{Prefix: "// "},
	},
}

// BuiltinStyles returns the built-in comment styles.
func BuiltinStyles() []BuiltinStyle {
	out := make([]BuiltinStyle, len(builtinStyles))
	for i, b := range builtinStyles {
		out[i] = BuiltinStyle{LanguageIDs: slices.Clone(b.LanguageIDs), Style: b.Style}
	}
	return out
}

// OverrideStyle is the style for a configured comment symbol.
func OverrideStyle(symbol string) Style {
	return Style{Prefix: symbol + " "}
}

// StyleFor returns the comment style for languageID. Overrides are checked in
// order before the built-in styles; the first exact match wins. The boolean is
// false when no rule matched and text stays unwrapped.
func StyleFor(languageID string, overrides []config.AdditionalFormat) (Style, bool) {
	for _, o := range overrides {
		if o.LanguageID == languageID {
			return OverrideStyle(o.CommentSymbol), true
		}
	}
	for _, b := range builtinStyles {
		if slices.Contains(b.LanguageIDs, languageID) {
			return b.Style, true
		}
	}
	return Style{}, false
}
