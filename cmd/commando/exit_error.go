// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

const (
	// ExitCancelled is returned when the user dismisses the form.
	ExitCancelled = 1
	// ExitFailure is returned for every fatal error.
	ExitFailure = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
	// Silent suppresses the error message; the exit code alone reports the outcome.
	Silent bool
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
