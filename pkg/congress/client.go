package congress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/opencivics/congress/internal/httpclientx"
	"github.com/opencivics/congress/internal/model"
	"github.com/opencivics/congress/internal/urlx"
)

// DefaultBaseURL is the default service root.
const DefaultBaseURL = "https://api.nytimes.com/svc/politics"

// Logger is the logger used by the [*Client]. It is out of the
// box compatible with `log.Log` in `apex/log`.
type Logger = model.Logger

// HTTPClient is the preferred HTTP client. *http.Client implements it.
type HTTPClient = model.HTTPClient

// Fetcher is the generic URL-fetch capability used when the preferred
// [HTTPClient] is unavailable.
type Fetcher interface {
	Fetch(ctx context.Context, URL string) ([]byte, error)
}

// ErrRequestFailed is the error returned when a request fails.
type ErrRequestFailed = httpclientx.ErrRequestFailed

var (
	// ErrMissingAPIKey indicates that [Config.APIKey] is empty.
	ErrMissingAPIKey = errors.New("congress: missing API key")

	// ErrMissingAPIVersion indicates that [Config.APIVersion] is empty.
	ErrMissingAPIVersion = errors.New("congress: missing API version")

	// ErrInvalidFormat indicates that [Config.Format] is neither XML nor JSON.
	ErrInvalidFormat = errors.New("congress: invalid format")

	// ErrTransportUnavailable is the error a preferred [HTTPClient] returns
	// to route the request through the [Fetcher].
	ErrTransportUnavailable = httpclientx.ErrTransportUnavailable
)

// Config contains the [*Client] configuration.
type Config struct {
	// APIKey is the MANDATORY API key.
	APIKey string

	// APIVersion is the MANDATORY API version (e.g., "v3"). We embed
	// it verbatim into the base path.
	APIVersion string

	// Format is the OPTIONAL response format. When empty, we use [FormatXML].
	Format Format

	// BaseURL is the OPTIONAL service root. When empty, we use [DefaultBaseURL].
	BaseURL string

	// HTTPClient is the OPTIONAL preferred HTTP client. When both this
	// field and Fallback are nil, we use [http.DefaultClient]. When this
	// field is nil and Fallback is set, every request uses Fallback.
	HTTPClient HTTPClient

	// Fallback is the OPTIONAL fetcher used when the preferred HTTP client
	// is nil or unavailable. When nil, we fetch using the standard library.
	Fallback Fetcher

	// Logger is the OPTIONAL logger. When nil, we discard log messages.
	Logger Logger

	// Timeout is the OPTIONAL timeout of each request. When zero,
	// only the context bounds a request.
	Timeout time.Duration
}

// Client is a Congress API client. Construct using [New].
type Client struct {
	apiKey string
	format Format
	root   urlx.Path
	config *httpclientx.Config
}

// New validates the configuration and returns a new [*Client].
func New(config *Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if config.APIVersion == "" {
		return nil, ErrMissingAPIVersion
	}
	format := config.Format
	if format == "" {
		format = FormatXML
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL, err := urlx.ParseBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("congress: invalid base URL: %w", err)
	}
	// a nil preferred client with a fallback means "fallback only"
	httpClient := config.HTTPClient
	if httpClient == nil && config.Fallback == nil {
		httpClient = http.DefaultClient
	}
	var fallback httpclientx.Fetcher
	if config.Fallback != nil {
		fallback = config.Fallback
	}
	client := &Client{
		apiKey: config.APIKey,
		format: format,
		root:   urlx.NewPath(baseURL + "/" + config.APIVersion + "/us/legislative/congress"),
		config: &httpclientx.Config{
			Client:   httpClient,
			Fallback: fallback,
			Logger:   model.ValidLoggerOrDefault(config.Logger),
			Timeout:  config.Timeout,
		},
	}
	return client, nil
}

// Format returns the response format used by the client.
func (c *Client) Format() Format {
	return c.format
}

// URL returns the URL we would request for the given resource path
// segments and query parameters. The path is rooted at the API base
// path, the format extension is appended to the last segment, the
// api-key parameter comes first, and params follow in order.
func (c *Client) URL(segments []string, params ...Param) string {
	var query urlx.Query
	for _, p := range params {
		query.Add(p.Name, p.Value)
	}
	return c.uri(c.root.Join(segments...), &query)
}

// Param is a query string parameter.
type Param = urlx.Param

func (c *Client) uri(resource urlx.Path, params *urlx.Query) string {
	var query urlx.Query
	query.Add(model.HTTPQueryAPIKey, c.apiKey)
	query.Extend(params)
	return urlx.WithQuery(resource.WithExtension(string(c.format)), &query)
}

// get fetches the given resource and returns the raw body.
func (c *Client) get(ctx context.Context, resource urlx.Path, params *urlx.Query) ([]byte, error) {
	return httpclientx.GetRaw(ctx, httpclientx.NewEndpoint(c.uri(resource, params)), c.config)
}

// path returns the resource path below the API base path.
func (c *Client) path(segments ...string) urlx.Path {
	return c.root.Join(segments...)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
