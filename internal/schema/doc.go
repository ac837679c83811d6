// SPDX-License-Identifier: MPL-2.0

// Package schema loads commando description files.
//
// A description is a JSON document naming a base command and an ordered list
// of option descriptors. Each descriptor has a kind drawn from a closed set
// (text, file, files, directory, directories, boolean). Descriptors with a
// missing or unknown kind are dropped at parse time and reported as
// Diagnostics; everything else about the document must match the embedded
// CUE schema or loading fails.
package schema
