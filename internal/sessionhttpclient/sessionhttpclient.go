// Package sessionhttpclient creates the preferred HTTP client used
// by the command line tool for talking to the congress API.
package sessionhttpclient

import (
	"net/http"
	"time"

	"github.com/jybp/httpthrottle"
	"github.com/opencivics/congress/internal/model"
	"golang.org/x/time/rate"
)

// Config contains config for creating a new session HTTP client.
type Config struct {
	// RequestsPerSecond is the OPTIONAL maximum request rate. When
	// zero or negative, requests are not throttled.
	RequestsPerSecond float64

	// Timeout is the OPTIONAL overall timeout of each request.
	Timeout time.Duration
}

// New creates a new HTTPClient for the congress API. When the config
// asks for a request rate, the transport waits on a token bucket
// allowing a burst of a single request.
func New(config *Config) model.HTTPClient {
	client := &http.Client{Timeout: config.Timeout}
	if config.RequestsPerSecond > 0 {
		client.Transport = httpthrottle.Default(
			rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
		)
	}
	return client
}
