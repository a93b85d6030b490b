package flow

import (
	"net/url"
	"strings"
)

// TokenFromLink extracts the reset token from an emailed reset link: the
// last path segment, e.g. "abc123" out of
// "https://host/change-password/abc123". A bare token passes through
// unchanged.
func TokenFromLink(link string) string {
	p := link
	if u, err := url.Parse(link); err == nil && u.Path != "" {
		p = u.Path
	}
	parts := strings.Split(p, "/")
	return parts[len(parts)-1]
}
