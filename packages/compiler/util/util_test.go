package util

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitAtColon(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		defaultValues []string
		expected      []string
	}{
		{
			name:          "should split at the first colon",
			input:         "a: b",
			defaultValues: []string{"a: b", "a: b"},
			expected:      []string{"a", "b"},
		},
		{
			name:          "should trim surrounding whitespace",
			input:         "  prop  :  alias  ",
			defaultValues: nil,
			expected:      []string{"prop", "alias"},
		},
		{
			name:          "should keep later colons in the second part",
			input:         "style: color: red",
			defaultValues: nil,
			expected:      []string{"style", "color: red"},
		},
		{
			name:          "should return the defaults without a colon",
			input:         "plain",
			defaultValues: []string{"plain", "plain"},
			expected:      []string{"plain", "plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitAtColon(tt.input, tt.defaultValues)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d parts, got %d", len(tt.expected), len(result))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("part %d: expected %q, got %q", i, tt.expected[i], result[i])
				}
			}
		})
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MyService", "MyService"},
		{"a-b.c", "a_b_c"},
		{"anonymous_token_3_", "anonymous_token_3_"},
		{"with space (1)", "with_space__1_"},
	}
	for _, tt := range tests {
		if got := SanitizeIdentifier(tt.input); got != tt.expected {
			t.Errorf("SanitizeIdentifier(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

type stringerToken struct{ name string }

func (s *stringerToken) String() string { return s.name }

func TestStringify(t *testing.T) {
	t.Run("nil stringifies to null", func(t *testing.T) {
		if got := Stringify(nil); got != "null" {
			t.Errorf("expected null, got %q", got)
		}
	})

	t.Run("strings pass through", func(t *testing.T) {
		if got := Stringify("token"); got != "token" {
			t.Errorf("expected token, got %q", got)
		}
	})

	t.Run("lists stringify element-wise", func(t *testing.T) {
		got := Stringify([]interface{}{"a", 1, nil})
		if got != "[a, 1, null]" {
			t.Errorf("unexpected list form: %q", got)
		}
	})

	t.Run("stringers use their declared name", func(t *testing.T) {
		if got := Stringify(&stringerToken{name: "Named"}); got != "Named" {
			t.Errorf("expected Named, got %q", got)
		}
	})

	t.Run("function values render as a call expression", func(t *testing.T) {
		got := Stringify(func() {})
		if !strings.Contains(got, "(") {
			t.Errorf("expected a call-expression shape, got %q", got)
		}
	})

	t.Run("other values fall back to their printed form", func(t *testing.T) {
		if got := Stringify(42); got != "42" {
			t.Errorf("expected 42, got %q", got)
		}
	})
}

func TestAssertArrayOfStrings(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"nil is fine", nil, false},
		{"typed string slice is fine", []string{"a", "b"}, false},
		{"untyped slice of strings is fine", []interface{}{"a", "b"}, false},
		{"mixed slice fails", []interface{}{"a", 1}, true},
		{"non-slice fails", "a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertArrayOfStrings("styles", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected wantErr=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !strings.Contains(err.Error(), "'styles'") {
				t.Errorf("expected the identifier in the message, got %v", err)
			}
		})
	}
}

func TestAssertInterpolationSymbols(t *testing.T) {
	t.Run("nil is accepted", func(t *testing.T) {
		if err := AssertInterpolationSymbols("interpolation", nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("a custom pair is accepted", func(t *testing.T) {
		if err := AssertInterpolationSymbols("interpolation", []string{"{%", "%}"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("must be a [start, end] pair", func(t *testing.T) {
		err := AssertInterpolationSymbols("interpolation", []string{"{{"})
		if err == nil || !strings.Contains(err.Error(), "[start, end]") {
			t.Errorf("expected an arity error, got %v", err)
		}
	})

	t.Run("reserved symbols are rejected", func(t *testing.T) {
		rejected := [][]string{
			{"<%", "%>"},  // html tag characters
			{"{", "}"},    // i18n expansion braces
			{"&#", ";"},   // character reference
			{"//", "//"},  // comment
			{"  ", "  "},  // blank
		}
		for _, pair := range rejected {
			err := AssertInterpolationSymbols("interpolation", pair)
			if err == nil {
				t.Errorf("expected %v to be rejected", pair)
				continue
			}
			want := fmt.Sprintf("['%s', '%s']", pair[0], pair[1])
			if !strings.Contains(err.Error(), want) {
				t.Errorf("expected the pair %s in the message, got %v", want, err)
			}
		}
	})
}
