// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name:  string
	count?: int
	...
}
`

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseJSONAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		res, err := ParseJSONAndDecode[testDoc]([]byte(testSchema), []byte(`{"name": "grep", "count": 2, "extra": true}`), "#Doc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Value.Name != "grep" || res.Value.Count != 2 {
			t.Errorf("decoded %+v", *res.Value)
		}
	})

	t.Run("CUE syntax is not JSON", func(t *testing.T) {
		t.Parallel()

		_, err := ParseJSONAndDecode[testDoc]([]byte(testSchema), []byte(`name: "grep"`), "#Doc", WithFilename("doc.json"))
		if err == nil {
			t.Fatal("expected error for non-JSON input")
		}
		if !strings.Contains(err.Error(), "doc.json") {
			t.Errorf("error should name the file, got: %v", err)
		}
	})

	t.Run("shape mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := ParseJSONAndDecode[testDoc]([]byte(testSchema), []byte(`{"name": 3}`), "#Doc")
		if err == nil {
			t.Fatal("expected error for wrong field type")
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		_, err := ParseJSONAndDecode[testDoc]([]byte(testSchema), []byte(`{"count": 1}`), "#Doc")
		if err == nil {
			t.Fatal("expected error for missing name")
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		_, err := ParseJSONAndDecode[testDoc]([]byte(testSchema), []byte(`{"name": "grep"}`), "#Doc", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Fatalf("expected size error, got %v", err)
		}
	})
}

func TestParseAndDecode_AcceptsCUE(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte("// comment\nname: \"grep\"\n"), "#Doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value.Name != "grep" {
		t.Errorf("Name = %q, want grep", res.Value.Name)
	}
}

func TestParseAndDecode_Map(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte("name: \"grep\"\ncount: 2\n"), "#Doc", WithFilename("config.cue"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := (*res.Value)["name"]; got != "grep" {
		t.Errorf("name = %v, want grep", got)
	}

	_, err = ParseAndDecode[map[string]any]([]byte(testSchema), []byte("count: \"two\"\n"), "#Doc", WithFilename("config.cue"))
	if err == nil || !strings.HasPrefix(err.Error(), "config.cue: ") {
		t.Errorf("expected a schema error naming config.cue, got %v", err)
	}
}
