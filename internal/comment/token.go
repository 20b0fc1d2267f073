package comment

import (
	"regexp"
	"slices"
	"strings"
)

// Token is a placeholder recognized in comment templates.
type Token int

const (
	TokenDate Token = iota
	TokenUser
	TokenBranch
	TokenPartialBranch
)

var tokenNames = [...]string{
	TokenDate:          "date",
	TokenUser:          "user",
	TokenBranch:        "branch",
	TokenPartialBranch: "partialBranch",
}

// aliases maps alternative placeholder names to their token.
var aliases = map[string]Token{
	"identifier": TokenPartialBranch,
}

// Tokens returns every token in a stable order.
func Tokens() []Token {
	return []Token{TokenDate, TokenUser, TokenBranch, TokenPartialBranch}
}

func (t Token) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "unknown"
	}
	return tokenNames[t]
}

// Placeholder returns the template form of t, e.g. "{date}".
func (t Token) Placeholder() string {
	return "{" + t.String() + "}"
}

// NeedsBranch reports whether resolving t requires the current branch.
func (t Token) NeedsBranch() bool {
	return t == TokenBranch || t == TokenPartialBranch
}

// ParseToken looks up a placeholder name without braces, including aliases.
func ParseToken(name string) (Token, bool) {
	for _, t := range Tokens() {
		if t.String() == name {
			return t, true
		}
	}
	t, ok := aliases[name]
	return t, ok
}

// placeholderRegex matches {name} patterns
var placeholderRegex = regexp.MustCompile(`\{[A-Za-z]+\}`)

// Scan returns the tokens used in template, in order of first appearance.
func Scan(template string) []Token {
	var found []Token
	for _, m := range placeholderRegex.FindAllString(template, -1) {
		t, ok := ParseToken(m[1 : len(m)-1])
		if ok && !slices.Contains(found, t) {
			found = append(found, t)
		}
	}
	return found
}

// Unknown returns placeholders in template that are not recognized.
// They are passed through unchanged when resolving.
func Unknown(template string) []string {
	var unknown []string
	for _, m := range placeholderRegex.FindAllString(template, -1) {
		if _, ok := ParseToken(m[1 : len(m)-1]); !ok && !slices.Contains(unknown, m) {
			unknown = append(unknown, m)
		}
	}
	return unknown
}

// needsBranch reports whether any token in template requires the branch.
func needsBranch(template string) bool {
	return slices.ContainsFunc(Scan(template), Token.NeedsBranch)
}

// Values holds the resolved value of every token.
type Values struct {
	Date          string
	User          string
	Branch        string
	PartialBranch string
}

func (v Values) get(t Token) string {
	switch t {
	case TokenDate:
		return v.Date
	case TokenUser:
		return v.User
	case TokenBranch:
		return v.Branch
	case TokenPartialBranch:
		return v.PartialBranch
	}
	return ""
}

// Expand substitutes every placeholder in template in a single pass.
// Substituted values are not scanned again.
func Expand(template string, v Values) string {
	pairs := make([]string, 0, 2*(len(tokenNames)+len(aliases)))
	for _, t := range Tokens() {
		pairs = append(pairs, t.Placeholder(), v.get(t))
	}
	for name, t := range aliases {
		pairs = append(pairs, "{"+name+"}", v.get(t))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
