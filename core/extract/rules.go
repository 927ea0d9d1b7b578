// Package extract — URL rules.
// Helpers to pull a URL out of an inline style and normalize it into an
// absolute http(s) URL.
package extract

import (
	"net/url"
	"strings"
)

// backgroundImageURL returns the url(...) argument of the first
// background-image declaration in an inline style, or "" if none.
// The HTML parser has already decoded entities, but doubly saved pages
// can still carry literal &quot; markers, so those are stripped too.
func backgroundImageURL(style string) string {
	idx := strings.Index(style, "background-image")
	if idx == -1 {
		return ""
	}
	rest := style[idx:]
	open := strings.Index(rest, "url(")
	if open == -1 {
		return ""
	}
	rest = rest[open+len("url("):]
	end := strings.Index(rest, ")")
	if end == -1 {
		return ""
	}
	raw := rest[:end]
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "&quot;")
	raw = strings.TrimSuffix(raw, "&quot;")
	return strings.Trim(raw, `"'`)
}

// ResolveImageURL normalizes an extracted reference into an absolute
// http(s) URL. The viewer emits scheme-relative URLs (//host/path),
// which resolve to https. Anything without a host or with another
// scheme is rejected.
func ResolveImageURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	u.Fragment = ""
	return u.String(), true
}
