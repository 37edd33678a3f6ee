package cache

import (
	"net/url"
	"strings"
)

// Key builds the canonical cache key for an endpoint and its parameters.
// url.Values.Encode sorts by parameter name, so order never changes the key.
func Key(endpoint string, params url.Values) string {
	endpoint = strings.Trim(strings.TrimSpace(endpoint), "/")
	encoded := CanonicalParams(params)
	if encoded == "" {
		return endpoint
	}
	return endpoint + "?" + encoded
}

// CanonicalParams serializes params with keys sorted and values kept in insertion order.
func CanonicalParams(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	return params.Encode()
}
