// internal/extract/url.go
package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// urlPattern matches absolute http(s) URLs and protocol-relative URLs.
// The body of a match is the maximal run of characters outside
// whitespace, quotes and angle brackets. Trailing punctuation that is
// not in the excluded class stays part of the match; callers that need
// stricter boundaries must trim themselves.
var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+|//[^\s"'<>]+`)

// FindURLs returns every URL-shaped substring of s, in order of
// appearance. The returned candidates are not normalized.
func FindURLs(s string) []string {
	return urlPattern.FindAllString(s, -1)
}

// Normalize rewrites a protocol-relative URL to an absolute https URL.
// Already-absolute URLs pass through unchanged; an http scheme is never
// upgraded. Normalize is idempotent.
func Normalize(rawURL string) string {
	if strings.HasPrefix(rawURL, "//") {
		return "https:" + rawURL
	}
	return rawURL
}

// Domain returns the authority component (host, with port and userinfo
// if present) of rawURL. Malformed URLs yield the empty string rather
// than an error; the empty-string bucket counts like any other domain.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if u.User != nil {
		return u.User.String() + "@" + u.Host
	}
	return u.Host
}
