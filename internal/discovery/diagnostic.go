// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"

	// CodeSearchDirUnreadable reports a search directory that exists but cannot be listed.
	CodeSearchDirUnreadable DiagnosticCode = "search_dir_unreadable"
	// CodeDescriptionShadowed reports a description hidden by one with the same
	// name earlier in the search path.
	CodeDescriptionShadowed DiagnosticCode = "description_shadowed"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// DiagnosticCode is a machine-readable diagnostic identifier.
	DiagnosticCode string

	// Diagnostic is a non-fatal discovery finding returned to the caller
	// rather than written to stderr.
	Diagnostic struct {
		Severity Severity
		Code     DiagnosticCode
		// Message is the human-readable description.
		Message string
		// Path is the file or directory involved (optional).
		Path string
		// Cause is the underlying error (optional).
		Cause error
	}
)
