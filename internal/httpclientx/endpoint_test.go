package httpclientx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEndpoint(t *testing.T) {
	t.Run("the constructor only assigns the URL", func(t *testing.T) {
		epnt := NewEndpoint("https://www.example.com/x.json?api-key=k")
		if epnt.URL != "https://www.example.com/x.json?api-key=k" {
			t.Fatal("unexpected URL")
		}
	})

	t.Run("Redacted removes the API key", func(t *testing.T) {
		epnt := NewEndpoint("https://www.example.com/x.json?api-key=k&state=NY")
		expect := "https://www.example.com/x.json?api-key=[scrubbed]&state=NY"
		if diff := cmp.Diff(expect, epnt.Redacted()); diff != "" {
			t.Fatal(diff)
		}
	})
}
