package util

import (
	"fmt"
	"regexp"
)

// unusableInterpolationRegexps contains regex patterns for unusable interpolation symbols
var unusableInterpolationRegexps = []*regexp.Regexp{
	regexp.MustCompile(`^\s*$`),          // empty
	regexp.MustCompile(`[<>]`),           // html tag
	regexp.MustCompile(`^[{}]$`),         // i18n expansion
	regexp.MustCompile(`(?i)&(#|[a-z])`), // character reference (case insensitive)
	regexp.MustCompile(`^//`),            // comment
}

// AssertArrayOfStrings validates that an untyped value is either nil or a
// homogeneous list of strings. Untyped values show up where declarative
// input enters from a serialized form.
func AssertArrayOfStrings(identifier string, value interface{}) error {
	if value == nil {
		return nil
	}
	if _, ok := value.([]string); ok {
		return nil
	}
	valueSlice, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("expected '%s' to be an array of strings", identifier)
	}
	for _, entry := range valueSlice {
		if _, ok := entry.(string); !ok {
			return fmt.Errorf("expected '%s' to be an array of strings", identifier)
		}
	}
	return nil
}

// AssertInterpolationSymbols validates custom interpolation delimiters.
// The value must be nil or a [start, end] pair, and neither symbol may be
// one the template grammar already reserves.
func AssertInterpolationSymbols(identifier string, value []string) error {
	if value == nil {
		return nil
	}
	if len(value) != 2 {
		return fmt.Errorf("expected '%s' to be an array, [start, end]", identifier)
	}
	return checkUnusableSymbols(value[0], value[1])
}

// checkUnusableSymbols checks if start or end contains unusable interpolation symbols
func checkUnusableSymbols(start, end string) error {
	for _, regex := range unusableInterpolationRegexps {
		if regex.MatchString(start) {
			return fmt.Errorf("['%s', '%s'] contains unusable interpolation symbol", start, end)
		}
		if regex.MatchString(end) {
			return fmt.Errorf("['%s', '%s'] contains unusable interpolation symbol", start, end)
		}
	}
	return nil
}
