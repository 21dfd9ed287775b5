package utils

import (
	"net/url"
	"strings"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
)

// SanitizeReturnURL validates a post-login redirect target supplied by the
// client. Only same-origin absolute paths are accepted; anything that could
// redirect off-site or smuggle a scheme falls back to the dashboard.
//
// The value is checked both raw and percent-decoded so encoded traversal
// sequences cannot slip through.
func SanitizeReturnURL(raw string) string {
	if raw == "" {
		return constants.DefaultRedirectPath
	}

	candidates := []string{raw}
	if decoded, err := url.QueryUnescape(raw); err == nil && decoded != raw {
		candidates = append(candidates, decoded)
	}

	for _, s := range candidates {
		if !isSafeLocalPath(s) {
			return constants.DefaultRedirectPath
		}
	}

	return raw
}

func isSafeLocalPath(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))

	// Absolute URLs and scheme-relative URLs leave the site
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return false
	}
	if strings.HasPrefix(lower, "//") {
		return false
	}

	// Dangerous pseudo-schemes
	for _, scheme := range []string{"javascript:", "data:", "vbscript:"} {
		if strings.HasPrefix(lower, scheme) {
			return false
		}
	}

	if !strings.HasPrefix(s, "/") {
		return false
	}

	// Traversal segments only; literal dots in a name ("/a..b") are fine.
	if strings.Contains(s, "../") || strings.HasSuffix(s, "/..") {
		return false
	}

	return true
}
