package url_resolver

import "regexp"

var urlWithSchemaRegexp = regexp.MustCompile(`^([^:/?#]+):`)

// GetUrlScheme returns the scheme of a URL, or "" when the URL carries none.
func GetUrlScheme(url string) string {
	match := urlWithSchemaRegexp.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// UrlResolver detects URL schemes on declared module ids.
type UrlResolver struct{}

// NewUrlResolver creates a url resolver
func NewUrlResolver() *UrlResolver {
	return &UrlResolver{}
}

// SchemeOf returns the scheme of a module id, or "" for bare ids.
func (u *UrlResolver) SchemeOf(moduleID string) string {
	return GetUrlScheme(moduleID)
}

// IsResolvableUrl checks whether a URL can be resolved against a module base:
// relative URLs and the package/asset schemes qualify.
func IsResolvableUrl(url string) bool {
	if len(url) == 0 || url[0] == '/' {
		return false
	}
	scheme := GetUrlScheme(url)
	return scheme == "" || scheme == "package" || scheme == "asset"
}
