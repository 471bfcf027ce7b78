package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPClient is the HTTP client used to reach the Congress API.
//
// *http.Client implements this interface.
type HTTPClient interface {
	// Do sends the request and returns the response.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes idle connections.
	CloseIdleConnections()
}

const (
	// HTTPQueryAPIKey is the name of the query parameter carrying the API key.
	HTTPQueryAPIKey = "api-key"
)
