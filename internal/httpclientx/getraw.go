package httpclientx

//
// getraw.go - GET a raw response.
//

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opencivics/congress/internal/model"
	"github.com/opencivics/congress/internal/scrubber"
)

// GetRaw sends a GET request and reads a raw response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - epnt is the HTTP [*Endpoint] to use;
//
// - config is the config to use.
//
// This function either returns the response body or a [*ErrRequestFailed].
func GetRaw(ctx context.Context, epnt *Endpoint, config *Config) ([]byte, error) {
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}
	logger := &scrubber.Logger{Logger: model.ValidLoggerOrDefault(config.Logger)}

	// try with the preferred client first, if we have one
	if config.Client != nil {
		logger.Debugf("httpclientx: GET %s", epnt.URL)
		t0 := time.Now()
		data, err := do(ctx, config.Client, epnt.URL, config.maxBodySize())
		observe(transportPreferred, t0, err)
		if err == nil {
			logger.Debugf("httpclientx: GET %s: %d bytes", epnt.URL, len(data))
			return data, nil
		}
		if !errors.Is(err, ErrTransportUnavailable) {
			logger.Debugf("httpclientx: GET %s: %s", epnt.URL, err.Error())
			return nil, newErrRequestFailed(epnt.URL, false, err)
		}
		logger.Warnf("httpclientx: preferred client unavailable: %s", err.Error())
	}

	// otherwise use the fallback fetcher
	logger.Warnf("httpclientx: GET %s using the fallback fetcher", epnt.URL)
	metricFallbackCount.Inc()
	t0 := time.Now()
	data, err := config.fallback().Fetch(ctx, epnt.URL)
	observe(transportFallback, t0, err)
	if err != nil {
		logger.Debugf("httpclientx: GET %s: %s", epnt.URL, err.Error())
		return nil, newErrRequestFailed(epnt.URL, true, err)
	}
	logger.Debugf("httpclientx: GET %s: %d bytes", epnt.URL, len(data))
	return data, nil
}

// do performs a GET request for URL using the given client and returns
// the response body or an error. A non-2xx status is a failure.
func do(ctx context.Context, client model.HTTPClient, URL string, maxBodySize int64) ([]byte, error) {
	// construct the request to use
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}

	// get the response
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// handle the case of failure
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so that the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &ErrRequestFailed{
			URL:        URL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode),
		}
	}

	// read the whole body, making sure it is not too large
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBodySize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, maxBodySize)
	}
	return data, nil
}
