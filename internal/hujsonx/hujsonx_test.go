package hujsonx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnmarshal(t *testing.T) {
	type record struct {
		Key   string `json:"key"`
		Count int    `json:"count"`
	}

	t.Run("accepts comments and trailing commas", func(t *testing.T) {
		input := []byte(`{
			// the key
			"key": "abc",
			"count": 3, /* trailing */
		}`)
		var got record
		if err := Unmarshal(input, &got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(record{Key: "abc", Count: 3}, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("fails on invalid input", func(t *testing.T) {
		var got record
		if err := Unmarshal([]byte(`{"key":`), &got); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("fails on type mismatch", func(t *testing.T) {
		var got record
		if err := Unmarshal([]byte(`{"count": "x"}`), &got); err == nil {
			t.Fatal("expected an error")
		}
	})
}
