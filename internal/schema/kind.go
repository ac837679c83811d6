// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"errors"
	"fmt"
)

const (
	// KindText is a free-form text field.
	KindText Kind = "text"
	// KindFile is a text field with a single-file chooser.
	KindFile Kind = "file"
	// KindFiles is a text field with a multi-file chooser.
	KindFiles Kind = "files"
	// KindDirectory is a text field with a single-folder chooser.
	KindDirectory Kind = "directory"
	// KindDirectories is a text field with a multi-folder chooser.
	KindDirectories Kind = "directories"
	// KindBoolean is a checkbox; the flag is emitted without a value.
	KindBoolean Kind = "boolean"
)

var (
	// ErrMissingKind is returned when a descriptor has no type.
	ErrMissingKind = errors.New("missing option type")
	// ErrUnknownKind is the sentinel wrapped by UnknownKindError.
	ErrUnknownKind = errors.New("unknown option type")

	// legacyKinds maps the spellings used by the first generation of
	// description files onto the current kinds.
	legacyKinds = map[string]Kind{
		"field":      KindText,
		"filepicker": KindFile,
		"checkbox":   KindBoolean,
	}
)

type (
	// Kind is the type of an option descriptor.
	Kind string

	// UnknownKindError is returned when a descriptor's type is not recognized.
	// It wraps ErrUnknownKind for errors.Is() compatibility.
	UnknownKindError struct {
		Value string
	}
)

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindText, KindFile, KindFiles, KindDirectory, KindDirectories, KindBoolean}
}

// ParseKind maps a descriptor type string onto a Kind.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return "", ErrMissingKind
	}
	if k := Kind(s); k.IsValid() {
		return k, nil
	}
	if k, ok := legacyKinds[s]; ok {
		return k, nil
	}
	return "", &UnknownKindError{Value: s}
}

// IsValid reports whether k is one of the enumerated kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindFile, KindFiles, KindDirectory, KindDirectories, KindBoolean:
		return true
	default:
		return false
	}
}

// String returns the kind as written in description files.
func (k Kind) String() string { return string(k) }

// Error implements the error interface for UnknownKindError.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown option type %q", e.Value)
}

// Unwrap returns ErrUnknownKind for errors.Is() compatibility.
func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }
