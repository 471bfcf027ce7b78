package mocks

import "context"

// Fetcher allows mocking an httpclientx.Fetcher.
type Fetcher struct {
	MockFetch func(ctx context.Context, URL string) ([]byte, error)
}

// Fetch calls MockFetch.
func (f *Fetcher) Fetch(ctx context.Context, URL string) ([]byte, error) {
	return f.MockFetch(ctx, URL)
}
