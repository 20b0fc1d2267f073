package comment

import (
	"fmt"
	"regexp"
)

// PartialBranch extracts the identifier from branch using pattern.
// An empty pattern returns branch unchanged. Otherwise the first match is
// returned, or "" when nothing matches.
func PartialBranch(branch, pattern string) (string, error) {
	if pattern == "" {
		return branch, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid partial branch pattern %q: %w", pattern, err)
	}
	return re.FindString(branch), nil
}
