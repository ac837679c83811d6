// SPDX-License-Identifier: MPL-2.0

// Package form turns a parsed description into live option state and
// assembles the final command line.
//
// Build asks a Renderer for one control per option and keeps only the
// returned handles. Once the user confirms, ReadBack reads every handle
// exactly once and freezes the result; Assemble then serializes the frozen
// entries in descriptor order. How each kind is rendered, activated and
// serialized lives in a single policy table (policy.go).
package form
