package utils

import (
	"net/url"
)

// IsValidHTTPURL reports whether s parses as an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
