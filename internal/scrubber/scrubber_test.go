package scrubber

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScrub(t *testing.T) {
	for _, test := range []struct {
		name, input, expected string
	}{{
		name:     "key as the only parameter",
		input:    "https://api.example.com/svc/politics/v3/us/legislative/congress/members/new.json?api-key=deadbeef",
		expected: "https://api.example.com/svc/politics/v3/us/legislative/congress/members/new.json?api-key=[scrubbed]",
	}, {
		name:     "key followed by other parameters",
		input:    "GET https://h/x.xml?api-key=deadbeef&state=NY&district=10: 403 Forbidden",
		expected: "GET https://h/x.xml?api-key=[scrubbed]&state=NY&district=10: 403 Forbidden",
	}, {
		name:     "key following another parameter",
		input:    "https://h/x.xml?state=NY&api-key=deadbeef",
		expected: "https://h/x.xml?state=NY&api-key=[scrubbed]",
	}, {
		name:     "key inside a quoted URL",
		input:    `Get "https://h/x.json?api-key=deadbeef": dial tcp: connection refused`,
		expected: `Get "https://h/x.json?api-key=[scrubbed]": dial tcp: connection refused`,
	}, {
		name:     "key followed by a colon",
		input:    "GET https://h/x.json?api-key=deadbeef: 404 Not Found",
		expected: "GET https://h/x.json?api-key=[scrubbed]: 404 Not Found",
	}, {
		name:     "empty key",
		input:    "https://h/x.json?api-key=",
		expected: "https://h/x.json?api-key=[scrubbed]",
	}, {
		name:     "no key at all",
		input:    "2019/05/08 15:37:31 starting",
		expected: "2019/05/08 15:37:31 starting",
	}, {
		name:     "parameter with a similar name",
		input:    "https://h/x.json?my-api-key=deadbeef",
		expected: "https://h/x.json?my-api-key=deadbeef",
	}} {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.expected, Scrub(test.input)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
