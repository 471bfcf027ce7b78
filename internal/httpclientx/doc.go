// Package httpclientx performs the HTTP GET requests of the Congress
// API client and returns the raw response bodies.
//
// Each request is a single attempt. The request goes through the
// preferred [model.HTTPClient] configured in [Config]. When there is no
// preferred client, or the preferred client reports that it cannot be
// used by returning an error wrapping [ErrTransportUnavailable], the
// request goes through the [Fetcher] configured as fallback.
//
// Failures are reported as [*ErrRequestFailed].
package httpclientx
