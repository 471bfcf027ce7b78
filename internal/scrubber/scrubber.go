// Package scrubber removes credentials from strings before they
// end up in log messages or error strings.
package scrubber

import (
	"regexp"

	"github.com/opencivics/congress/internal/model"
)

// Placeholder replaces the value of scrubbed parameters.
const Placeholder = "[scrubbed]"

// apiKeyPattern matches the api-key query parameter and its value. The
// parameter may start the query or follow another parameter. The value
// consists of unreserved or percent-encoded characters.
var apiKeyPattern = regexp.MustCompile(`([?&]` + regexp.QuoteMeta(model.HTTPQueryAPIKey) + `=)[A-Za-z0-9._~%+-]*`)

// Scrub returns a copy of the input string where the value of every
// api-key query parameter has been replaced by [Placeholder].
func Scrub(s string) string {
	return apiKeyPattern.ReplaceAllString(s, "${1}"+Placeholder)
}
