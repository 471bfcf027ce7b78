package httpclientx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/opencivics/congress/internal/scrubber"
)

// ErrTransportUnavailable indicates that a transport cannot be used. A
// preferred [model.HTTPClient] returns an error wrapping this error to
// route the request through the fallback [Fetcher].
var ErrTransportUnavailable = errors.New("httpclientx: transport unavailable")

// ErrUnexpectedStatus indicates that the server returned a non-2xx status.
var ErrUnexpectedStatus = errors.New("httpclientx: unexpected status code")

// ErrBodyTooLarge indicates that the response body exceeds the maximum size.
var ErrBodyTooLarge = errors.New("httpclientx: response body too large")

// ErrRequestFailed is the error returned by [GetRaw] and by [StdlibFetcher].
type ErrRequestFailed struct {
	// URL is the requested URL, including the query.
	URL string

	// StatusCode is the HTTP status code or zero when we did not
	// receive a response.
	StatusCode int

	// Status is the HTTP status line or empty when we did not
	// receive a response.
	Status string

	// Fallback is true when the request went through the fallback [Fetcher].
	Fallback bool

	// Err is the underlying error.
	Err error
}

// Error implements error. The returned string never contains the API key.
func (err *ErrRequestFailed) Error() string {
	var reason string
	switch {
	case err.Status != "":
		reason = err.Status
	case err.StatusCode != 0:
		reason = strconv.Itoa(err.StatusCode)
	case err.Err != nil:
		reason = err.Err.Error()
	default:
		reason = "request failed"
	}
	message := fmt.Sprintf("httpclientx: GET %s: %s", err.URL, reason)
	if err.Fallback {
		message += " (fallback)"
	}
	return scrubber.Scrub(message)
}

// Unwrap allows to get the underlying error.
func (err *ErrRequestFailed) Unwrap() error {
	return err.Err
}

// newErrRequestFailed converts err to [*ErrRequestFailed], reusing the
// existing instance when err already is one.
func newErrRequestFailed(URL string, fallback bool, err error) *ErrRequestFailed {
	var failure *ErrRequestFailed
	if errors.As(err, &failure) {
		copied := *failure
		copied.Fallback = copied.Fallback || fallback
		return &copied
	}
	return &ErrRequestFailed{
		URL:      URL,
		Fallback: fallback,
		Err:      err,
	}
}
