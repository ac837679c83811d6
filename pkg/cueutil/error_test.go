// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "grep.json"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		originalErr := errors.New("some error")
		err := FormatError(originalErr, "grep.json")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "grep.json") {
			t.Errorf("error should contain filepath, got: %v", err)
		}
		if !errors.Is(err, originalErr) {
			t.Errorf("error should wrap the original, got: %v", err)
		}
	})

	t.Run("CUE error names the document path once", func(t *testing.T) {
		t.Parallel()

		_, err := ParseJSONAndDecode[testDoc]([]byte(testSchema), []byte(`{"name": 3}`), "#Doc", WithFilename("grep.json"))
		if err == nil {
			t.Fatal("expected error")
		}
		msg := err.Error()
		if !strings.HasPrefix(msg, "grep.json: ") {
			t.Errorf("error should start with the file name, got: %q", msg)
		}
		if strings.Contains(msg, "#Doc") {
			t.Errorf("error should not expose the schema definition, got: %q", msg)
		}
		if !strings.Contains(msg, "name: ") || strings.Contains(msg, "name: name") {
			t.Errorf("error should name the field exactly once, got: %q", msg)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"command"}, expected: "command"},
		{name: "nested path", path: []string{"ui", "theme"}, expected: "ui.theme"},
		{name: "array index", path: []string{"options", "0", "type"}, expected: "options[0].type"},
		{name: "leading number is a key", path: []string{"0", "type"}, expected: "0.type"},
		{name: "trailing index", path: []string{"search_path", "3"}, expected: "search_path[3]"},
		{name: "definition dropped", path: []string{"#Schema", "options", "0", "type"}, expected: "options[0].type"},
		{name: "definition only", path: []string{"#Config"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "within limit", size: 11, wantErr: false},
		{name: "at exact limit", size: 100, wantErr: false},
		{name: "exceeding limit", size: 101, wantErr: true},
		{name: "empty", size: 0, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), 100, "grep.json")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "grep.json") {
				t.Errorf("error should contain filename, got: %v", err)
			}
		})
	}
}
