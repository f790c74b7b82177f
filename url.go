package sitegrab

import (
	"net/url"
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// NormalizeURL trims the input and prepends https:// when no scheme is given.
// Returns EINVALID for an empty URL or one without a parseable host.
func NormalizeURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", Errorf(EINVALID, "URL required")
	}
	if !schemeRe.MatchString(rawURL) {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", Errorf(EINVALID, "invalid URL: %q", rawURL)
	}
	return rawURL, nil
}
