// Package congress is a client for the Congress API, which serves data
// about members, votes, bills, nominations, committees, and schedules
// of the United States Congress.
//
// Each method of [*Client] maps onto one API resource. The method builds
// the resource URL from its arguments, attaches the API key, performs a
// single GET request, and returns the raw response body in the format
// selected by [Config.Format]. The body is not parsed.
//
// A [*Client] holds read-only configuration and is safe for concurrent use.
//
// Failures are reported as [*ErrRequestFailed], which carries the
// requested URL and, when the server replied, the HTTP status:
//
//	body, err := client.MemberBio(ctx, "K000388")
//	var failure *congress.ErrRequestFailed
//	if errors.As(err, &failure) {
//		log.Printf("status %d", failure.StatusCode)
//	}
package congress
