package github

import "net/http"

// headerInjectingTransport wraps an http.RoundTripper to inject fixed
// headers and an optional bearer token into every request.
type headerInjectingTransport struct {
	base    http.RoundTripper
	token   string
	headers map[string]string
}

// RoundTrip implements http.RoundTripper.
func (t *headerInjectingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())

	for key, value := range t.headers {
		clone.Header.Set(key, value)
	}
	if t.token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.token)
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
