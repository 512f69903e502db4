package url_resolver

import "testing"

func TestGetUrlScheme(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"package:app/comp", "package"},
		{"asset:lib/thing", "asset"},
		{"http://example.com/x", "http"},
		{"app/comp", ""},
		{"./relative", ""},
		{"/rooted/path", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := GetUrlScheme(tt.url); got != tt.expected {
			t.Errorf("GetUrlScheme(%q): expected %q, got %q", tt.url, tt.expected, got)
		}
	}
}

func TestSchemeOf(t *testing.T) {
	resolver := NewUrlResolver()
	if got := resolver.SchemeOf("asset:x"); got != "asset" {
		t.Errorf("expected asset, got %q", got)
	}
	if got := resolver.SchemeOf("bare/id"); got != "" {
		t.Errorf("expected no scheme, got %q", got)
	}
}

func TestIsResolvableUrl(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"a/b", true},
		{"package:a/b", true},
		{"asset:a/b", true},
		{"http://example.com", false},
		{"/absolute", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsResolvableUrl(tt.url); got != tt.expected {
			t.Errorf("IsResolvableUrl(%q): expected %v, got %v", tt.url, tt.expected, got)
		}
	}
}
