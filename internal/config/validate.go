package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidBranchBackends lists the accepted branch_backend values.
var ValidBranchBackends = []string{"git", "native"}

// Validate checks settings for values that can never work.
func Validate(s Settings) error {
	_, err := Sanitize(s)
	return err
}

// Sanitize repairs invalid fields and reports each one, so the rest of a
// file still applies:
//   - an unknown branch_backend falls back to the default
//   - additional_formats entries without a language_id are dropped
//   - an invalid partial_branch is kept; it resolves to an empty value
func Sanitize(s Settings) (Settings, error) {
	var errs []error
	if err := validateEnum(s.BranchBackend, "branch_backend", ValidBranchBackends); err != nil {
		errs = append(errs, err)
		s.BranchBackend = DefaultBranchBackend
	}
	if err := ValidatePartialBranch(s.PartialBranch); err != nil {
		errs = append(errs, err)
	}
	formats, err := validFormats(s.AdditionalFormats)
	if err != nil {
		errs = append(errs, err)
	}
	s.AdditionalFormats = formats
	return s, errors.Join(errs...)
}

// validFormats returns the entries that have a language_id.
func validFormats(formats []AdditionalFormat) ([]AdditionalFormat, error) {
	var (
		kept []AdditionalFormat
		errs []error
	)
	for i, f := range formats {
		if strings.TrimSpace(f.LanguageID) == "" {
			errs = append(errs, fmt.Errorf("invalid additional_formats[%d]: language_id must not be empty", i))
			continue
		}
		kept = append(kept, f)
	}
	return kept, errors.Join(errs...)
}

// ValidatePartialBranch checks that pattern (if non-empty) compiles.
func ValidatePartialBranch(pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("invalid partial_branch %q: %w", pattern, err)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
