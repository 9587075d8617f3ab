package validation

import (
	"net/url"
	"strings"
)

// RedirectURLMessage is reported when a template redirect URL is not safe to send signers to.
const RedirectURLMessage = "Please enter a valid URL, make sure you include http:// or https:// part of the url."

var allowedRedirectSchemes = map[string]bool{"http": true, "https": true}

// IsValidRedirectURL reports whether value is an absolute http(s) URL.
func IsValidRedirectURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	if !allowedRedirectSchemes[strings.ToLower(u.Scheme)] {
		return false
	}
	return u.Host != ""
}
