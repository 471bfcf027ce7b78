package root

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/opencivics/congress/config"
	"github.com/opencivics/congress/internal/log/handlers/cli"
	"github.com/opencivics/congress/internal/model"
	"github.com/opencivics/congress/internal/runtimex"
	"github.com/opencivics/congress/internal/scrubber"
	"github.com/opencivics/congress/internal/sessionhttpclient"
	"github.com/opencivics/congress/internal/version"
	"github.com/opencivics/congress/pkg/congress"
)

// Cmd is the root command
var Cmd = kingpin.New("congress", "Query the Congress legislative-data API.")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Stdout is where we write response bodies.
var Stdout io.Writer = os.Stdout

// Init should be called by all subcommands that need a client
var Init func() (*congress.Client, error)

func init() {
	configPath := Cmd.Flag("config", "Set a custom config file path").Short('c').String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()
	dryRun := Cmd.Flag("dry-run", "Print the request URL instead of fetching it.").Bool()

	Cmd.PreAction(func(_ *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("congress version %s", version.Version)
		}

		Init = func() (*congress.Client, error) {
			c, err := config.Load(*configPath)
			if err != nil {
				return nil, err
			}
			if c.Path() != "" {
				log.Debugf("Read config file from %s", c.Path())
			}
			if *verbose {
				log.WithFields(log.Fields{
					"type":                "table",
					"api_version":         c.APIVersion,
					"base_url":            baseURLOrDefault(c.BaseURL),
					"format":              c.Format,
					"requests_per_second": c.RequestsPerSecond,
					"timeout":             c.Timeout().String(),
				}).Info("config")
			}
			var txp model.HTTPClient
			if *dryRun {
				txp = &DryRunClient{Writer: Stdout}
			}
			return NewClient(c, txp, log.Log)
		}

		return nil
	})
}

func baseURLOrDefault(v string) string {
	if v == "" {
		return congress.DefaultBaseURL
	}
	return v
}

// NewClient creates a [*congress.Client] from the given config. When txp
// is nil, we use a session HTTP client honoring the configured timeout
// and request rate.
func NewClient(c *config.Config, txp model.HTTPClient, logger model.Logger) (*congress.Client, error) {
	if txp == nil {
		txp = sessionhttpclient.New(&sessionhttpclient.Config{
			RequestsPerSecond: c.RequestsPerSecond,
			Timeout:           c.Timeout(),
		})
	}
	return congress.New(&congress.Config{
		APIKey:     c.APIKey,
		APIVersion: c.APIVersion,
		Format:     congress.Format(c.Format),
		BaseURL:    c.BaseURL,
		HTTPClient: txp,
		Logger:     logger,
	})
}

// Fetch runs fetch using the client returned by [Init] and writes
// the raw response body to [Stdout].
func Fetch(fetch func(ctx context.Context, client *congress.Client) ([]byte, error)) error {
	runtimex.Assert(Init != nil, "root: Fetch called before the pre-action")
	client, err := Init()
	if err != nil {
		log.WithError(err).Error("Failed to initialize the client")
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	body, err := fetch(ctx, client)
	if err != nil {
		log.WithError(err).Error("Request failed")
		return err
	}
	_, err = Stdout.Write(body)
	return err
}

// DryRunClient is a [model.HTTPClient] that prints the scrubbed
// request URL and replies with an empty body.
type DryRunClient struct {
	Writer io.Writer
}

var _ model.HTTPClient = &DryRunClient{}

// Do implements model.HTTPClient.
func (c *DryRunClient) Do(req *http.Request) (*http.Response, error) {
	if _, err := io.WriteString(c.Writer, scrubber.Scrub(req.URL.String())+"\n"); err != nil {
		return nil, err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

// CloseIdleConnections implements model.HTTPClient.
func (c *DryRunClient) CloseIdleConnections() {
	// nothing
}
