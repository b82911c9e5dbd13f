package runblock

import (
	"net/url"
	"regexp"
)

const proxyURLMessage = "proxy_url must be a valid proxy URL (http/https/socks5)"

// scheme://[user[:pass]@]host[:port], host without colons or slashes.
var proxyURLPattern = regexp.MustCompile(`^(http|https|socks5)://([^:@]+(:[^@]*)?@)?[^\s:/]+(:\d+)?$`)

// ValidateProxyURL accepts an empty candidate as "not set" and otherwise
// returns the candidate unchanged when it is a valid http, https or socks5
// proxy endpoint.
func ValidateProxyURL(candidate string) (string, error) {
	if candidate == "" {
		return "", nil
	}
	if !IsValidProxyURL(candidate) {
		return "", &FieldError{Field: FieldProxyURL, Kind: KindProxyURLFormat, Message: proxyURLMessage}
	}
	return candidate, nil
}

// IsValidProxyURL requires the candidate to parse as a URL with a scheme and
// host and, additionally, to match the strict proxy grammar literally.
func IsValidProxyURL(candidate string) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	u, err := url.Parse(candidate)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return proxyURLPattern.MatchString(candidate)
}
