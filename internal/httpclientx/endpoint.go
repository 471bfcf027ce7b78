package httpclientx

import "github.com/opencivics/congress/internal/scrubber"

// Endpoint is an HTTP endpoint.
//
// The zero value is invalid; construct using [NewEndpoint].
type Endpoint struct {
	// URL is the MANDATORY endpoint URL, including the query.
	URL string
}

// NewEndpoint constructs a new [*Endpoint] instance using the given URL.
func NewEndpoint(URL string) *Endpoint {
	return &Endpoint{URL: URL}
}

// Redacted returns the URL without the API key, for logging.
func (e *Endpoint) Redacted() string {
	return scrubber.Scrub(e.URL)
}
