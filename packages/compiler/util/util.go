package util

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

var nonIdentifierCharRegexp = regexp.MustCompile(`\W`)

// SanitizeIdentifier rewrites a string into a codegen-safe identifier by
// replacing every character outside [A-Za-z0-9_] with an underscore.
func SanitizeIdentifier(name string) string {
	return nonIdentifierCharRegexp.ReplaceAllString(name, "_")
}

// SplitAtColon splits a string at the first colon character
func SplitAtColon(input string, defaultValues []string) []string {
	index := strings.IndexRune(input, ':')
	if index == -1 {
		return defaultValues
	}
	return []string{
		strings.TrimSpace(input[:index]),
		strings.TrimSpace(input[index+1:]),
	}
}

// Stringify converts a token to its string representation.
//
// Values that carry no declared name (function values, unnamed handles)
// stringify into a call-expression shape containing an opening parenthesis;
// callers use that shape as the anonymous-entity signal.
func Stringify(token interface{}) string {
	if token == nil {
		return "null"
	}

	if s, ok := token.(string); ok {
		return s
	}

	if arr, ok := token.([]interface{}); ok {
		parts := make([]string, len(arr))
		for i, v := range arr {
			parts[i] = Stringify(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	if named, ok := token.(fmt.Stringer); ok {
		return named.String()
	}

	// Function values have no declared name; render them as a call
	// expression over their code pointer.
	if rv := reflect.ValueOf(token); rv.Kind() == reflect.Func {
		return fmt.Sprintf("%T (0x%x)", token, rv.Pointer())
	}

	return fmt.Sprintf("%v", token)
}

// Console represents a console interface
type Console interface {
	Log(message string)
	Warn(message string)
	Error(message string)
}
