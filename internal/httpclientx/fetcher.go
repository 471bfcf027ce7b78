package httpclientx

import (
	"context"
	"net/http"
)

// Fetcher is a generic URL-fetch capability returning the response body.
type Fetcher interface {
	Fetch(ctx context.Context, URL string) ([]byte, error)
}

// FetcherFunc adapts a function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context, URL string) ([]byte, error)

var _ Fetcher = FetcherFunc(nil)

// Fetch implements [Fetcher].
func (fx FetcherFunc) Fetch(ctx context.Context, URL string) ([]byte, error) {
	return fx(ctx, URL)
}

// StdlibFetcher is a [Fetcher] using [http.DefaultClient].
type StdlibFetcher struct {
	// MaxBodySize is the OPTIONAL maximum response body size.
	MaxBodySize int64
}

var _ Fetcher = &StdlibFetcher{}

// Fetch implements [Fetcher].
func (f *StdlibFetcher) Fetch(ctx context.Context, URL string) ([]byte, error) {
	maxBodySize := f.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return do(ctx, http.DefaultClient, URL, maxBodySize)
}

// unavailableClient is a [model.HTTPClient] that is never available.
type unavailableClient struct{}

// UnavailableClient is a [model.HTTPClient] whose Do always fails
// with [ErrTransportUnavailable]. Using it as the preferred client
// forces every request through the fallback [Fetcher].
var UnavailableClient = unavailableClient{}

// Do implements model.HTTPClient.
func (unavailableClient) Do(req *http.Request) (*http.Response, error) {
	return nil, ErrTransportUnavailable
}

// CloseIdleConnections implements model.HTTPClient.
func (unavailableClient) CloseIdleConnections() {}
