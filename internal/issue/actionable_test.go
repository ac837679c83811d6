// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "locate description"},
			expected: "failed to locate description",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "locate description", Resource: "grep"},
			expected: "failed to locate description: grep",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load description",
				Resource:  "/etc/commando/grep.json",
				Cause:     errors.New("unexpected end of JSON input"),
			},
			expected: "failed to load description: /etc/commando/grep.json: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("not found")
	wrapped := NewErrorContext().WithOperation("locate description").Wrap(sentinel).BuildError()

	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "x"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions are bulleted",
			err: &ActionableError{
				Operation:   "locate description",
				Resource:    "grep",
				Suggestions: []string{"Run 'commando list'", "Set COMMANDO_PATH"},
			},
			contains: []string{"failed to locate description: grep", "• Run 'commando list'", "• Set COMMANDO_PATH"},
		},
		{
			name: "no chain when not verbose",
			err: &ActionableError{
				Operation: "read config",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to read config: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested chain when verbose",
			err: &ActionableError{
				Operation: "run form",
				Cause: &ActionableError{
					Operation: "load description",
					Cause:     errors.New("file not found"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to load description: file not found",
				"2. file not found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("grep").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return a nil error")
	}

	err := NewErrorContext().
		WithOperation("load description").
		WithResource("/etc/commando/tar.json").
		WithSuggestion("Check that the file is valid JSON").
		WithSuggestions("One", "Two").
		WithIssue(DescriptionParseErrorId).
		Wrap(errors.New("parse error")).
		Build()

	if err.Operation != "load description" || err.Resource != "/etc/commando/tar.json" {
		t.Errorf("unexpected context: %+v", err)
	}
	if len(err.Suggestions) != 3 || !err.HasSuggestions() {
		t.Errorf("Suggestions = %v, want 3", err.Suggestions)
	}
	if err.Issue != DescriptionParseErrorId {
		t.Errorf("Issue = %d", err.Issue)
	}
	if err.Cause == nil || err.Cause.Error() != "parse error" {
		t.Errorf("Cause = %v", err.Cause)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := WrapWithContext(cause, "read config", "/etc/commando/config.cue")
	if err.Operation != "read config" || err.Resource != "/etc/commando/config.cue" {
		t.Errorf("unexpected context: %+v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Cause should be the original error")
	}
	if WrapWithContext(nil, "x", "y") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
}

func TestActionableError_Help(t *testing.T) {
	t.Parallel()

	withIssue := &ActionableError{Operation: "locate description", Issue: DescriptionNotFoundId}
	out, err := withIssue.Help("notty")
	if err != nil {
		t.Fatalf("Help() error = %v", err)
	}
	if !strings.Contains(out, "COMMANDO_PATH") {
		t.Errorf("Help() should describe the search path, got:\n%s", out)
	}

	out, err = (&ActionableError{Operation: "x"}).Help("notty")
	if err != nil || out != "" {
		t.Errorf("Help() without issue = %q, %v", out, err)
	}
}
