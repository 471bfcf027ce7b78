package root

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/opencivics/congress/config"
	"github.com/opencivics/congress/internal/model"
	"github.com/opencivics/congress/internal/model/mocks"
	"github.com/opencivics/congress/pkg/congress"
)

func TestDryRunClient(t *testing.T) {
	buf := &bytes.Buffer{}
	c := &DryRunClient{Writer: buf}
	req, err := http.NewRequest(http.MethodGet, "https://api.example.com/x.json?api-key=abc&state=NY", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if len(body) != 0 {
		t.Fatal("expected an empty body")
	}
	if got := buf.String(); got != "https://api.example.com/x.json?api-key=[scrubbed]&state=NY\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewClient(t *testing.T) {
	t.Run("uses the given transport", func(t *testing.T) {
		var got string
		txp := &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				got = req.URL.String()
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader("<ok/>")),
				}, nil
			},
		}
		c := &config.Config{APIKey: "k", APIVersion: "v3", Format: "xml", BaseURL: "https://api.example.com/svc"}
		client, err := NewClient(c, txp, model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		body, err := client.NewMembers(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "<ok/>" {
			t.Fatal("unexpected body", string(body))
		}
		if got != "https://api.example.com/svc/v3/us/legislative/congress/members/new.xml?api-key=k" {
			t.Fatal("unexpected URL", got)
		}
	})

	t.Run("creates a session client when needed", func(t *testing.T) {
		c := &config.Config{APIKey: "k", APIVersion: "v3", Format: "json", RequestsPerSecond: 1}
		client, err := NewClient(c, nil, model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		if client.Format() != congress.FormatJSON {
			t.Fatal("unexpected format", client.Format())
		}
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		c := &config.Config{APIKey: "k", Format: "json"}
		_, err := NewClient(c, nil, model.DiscardLogger)
		if !errors.Is(err, congress.ErrMissingAPIVersion) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestFetch(t *testing.T) {
	buf := &bytes.Buffer{}
	stdout := Stdout
	Stdout = buf
	savedInit := Init
	t.Cleanup(func() {
		Stdout = stdout
		Init = savedInit
	})

	t.Run("writes the body", func(t *testing.T) {
		buf.Reset()
		Init = func() (*congress.Client, error) {
			return nil, nil
		}
		err := Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return []byte("{}"), nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if buf.String() != "{}" {
			t.Fatal("unexpected output", buf.String())
		}
	})

	t.Run("propagates init errors", func(t *testing.T) {
		buf.Reset()
		expected := errors.New("mocked error")
		Init = func() (*congress.Client, error) {
			return nil, expected
		}
		err := Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			panic("should not be called")
		})
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		buf.Reset()
		expected := errors.New("mocked error")
		Init = func() (*congress.Client, error) {
			return nil, nil
		}
		err := Fetch(func(ctx context.Context, c *congress.Client) ([]byte, error) {
			return nil, expected
		})
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
		if buf.Len() != 0 {
			t.Fatal("unexpected output", buf.String())
		}
	})
}
