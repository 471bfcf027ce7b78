package config

import "time"

const (
	// DefaultAPIVersion is the API version used when none is configured.
	DefaultAPIVersion = "v3"

	// DefaultFormat is the response format the CLI asks for by default.
	DefaultFormat = "json"
)

// Environment variables overriding the config file.
const (
	EnvConfigPath = "CONGRESS_CONFIG"
	EnvAPIKey     = "CONGRESS_API_KEY"
	EnvAPIVersion = "CONGRESS_API_VERSION"
	EnvFormat     = "CONGRESS_FORMAT"
)

// Config for the congress command line tool
type Config struct {
	Comment string `json:"_"`

	APIKey     string `json:"api_key"`
	APIVersion string `json:"api_version"`
	Format     string `json:"format"`
	BaseURL    string `json:"base_url"`

	// TimeoutSeconds is the overall timeout of each request. Zero
	// means no timeout.
	TimeoutSeconds int64 `json:"timeout_seconds"`

	// RequestsPerSecond throttles outgoing requests. Zero means
	// no throttling.
	RequestsPerSecond float64 `json:"requests_per_second"`

	path string
}

// Path returns the path the config was read from, if any.
func (c *Config) Path() string {
	return c.path
}

// Timeout returns TimeoutSeconds as a [time.Duration].
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
