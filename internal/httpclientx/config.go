package httpclientx

import (
	"time"

	"github.com/opencivics/congress/internal/model"
)

// DefaultMaxBodySize is the default maximum response body size.
const DefaultMaxBodySize = 1 << 22

// Config contains configuration for [GetRaw].
//
// The zero value is valid: requests go through the [StdlibFetcher] and
// log messages are discarded.
type Config struct {
	// Client is the OPTIONAL preferred [model.HTTPClient] to use.
	Client model.HTTPClient

	// Fallback is the OPTIONAL [Fetcher] used when Client is nil or
	// unavailable. When nil, we use a [*StdlibFetcher].
	Fallback Fetcher

	// Logger is the OPTIONAL [model.Logger] to use.
	Logger model.Logger

	// MaxBodySize is the OPTIONAL maximum response body size. When
	// zero or negative, we use [DefaultMaxBodySize].
	MaxBodySize int64

	// Timeout is the OPTIONAL timeout for the whole request. When
	// zero or negative, only the context bounds the request.
	Timeout time.Duration
}

func (c *Config) maxBodySize() int64 {
	if c.MaxBodySize > 0 {
		return c.MaxBodySize
	}
	return DefaultMaxBodySize
}

func (c *Config) fallback() Fetcher {
	if c.Fallback != nil {
		return c.Fallback
	}
	return &StdlibFetcher{MaxBodySize: c.MaxBodySize}
}
