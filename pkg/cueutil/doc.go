// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Both commando inputs go through the same 3-step flow: compile the embedded
// schema, unify the user document with it, then validate and decode into a Go
// struct. Description files are strict JSON and use ParseJSONAndDecode; the
// configuration file is CUE.
//
//	//go:embed schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseJSONAndDecode[document](
//	    schemaBytes,
//	    data,
//	    "#Schema",
//	    cueutil.WithFilename("grep.json"),
//	)
package cueutil
