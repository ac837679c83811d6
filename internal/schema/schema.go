// SPDX-License-Identifier: MPL-2.0

package schema

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/commando-cli/commando/internal/issue"
	"github.com/commando-cli/commando/pkg/cueutil"
)

const (
	// FileExt is the extension of description files.
	FileExt = ".json"

	defaultValueLabel   = "Label:"
	defaultBooleanLabel = "Option"
)

//go:embed schema.cue
var schemaCUE []byte

type (
	// Schema is a parsed description file. It is immutable once loaded.
	Schema struct {
		// Version is accepted but does not change behavior.
		Version int
		// Command is the base command line that options are appended to.
		Command string
		// Options holds the valid descriptors in document order.
		Options []Option
	}

	// Option describes one control of the form.
	Option struct {
		// Index is the position of the descriptor in the document's options list.
		Index int
		// Name is the flag token emitted before the value. Empty emits the value alone.
		Name string
		// Title is the control label as written in the document.
		Title string
		// Kind selects the control and the serialization rule.
		Kind Kind
		// Default seeds the text of value kinds; "true" checks a boolean.
		Default string
	}

	// Diagnostic reports a descriptor that was skipped while parsing.
	Diagnostic struct {
		// Index is the position of the skipped descriptor.
		Index int
		// Title and Name identify the descriptor for humans.
		Title string
		Name  string
		// Err is ErrMissingKind or an *UnknownKindError.
		Err error
	}

	document struct {
		Version int         `json:"version"`
		Command string      `json:"command"`
		Options []rawOption `json:"options"`
	}

	// rawOption fields are pointers so that null and absent decode alike.
	rawOption struct {
		Name         *string `json:"name"`
		Title        *string `json:"title"`
		Type         *string `json:"type"`
		Default      *string `json:"default"`
		DefaultValue *string `json:"defaultValue"`
	}
)

// Label returns the title, or a placeholder when the document has none.
func (o Option) Label() string {
	if o.Title != "" {
		return o.Title
	}
	if o.Kind == KindBoolean {
		return defaultBooleanLabel
	}
	return defaultValueLabel
}

// DefaultChecked is the initial state of a boolean option.
func (o Option) DefaultChecked() bool {
	return o.Default == "true"
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("options[%d]: %v", d.Index, d.Err)
}

// Unwrap returns the underlying kind error.
func (d Diagnostic) Unwrap() error { return d.Err }

// Parse decodes a description document. The returned error is fatal: the
// document is not JSON or does not have the shape of a description. Skipped
// descriptors are returned as diagnostics alongside a usable Schema.
func Parse(data []byte, filename string) (*Schema, []Diagnostic, error) {
	res, err := cueutil.ParseJSONAndDecode[document](schemaCUE, data, "#Schema", cueutil.WithFilename(filename))
	if err != nil {
		return nil, nil, err
	}
	doc := res.Value

	s := &Schema{
		Version: doc.Version,
		Command: doc.Command,
		Options: make([]Option, 0, len(doc.Options)),
	}
	var diags []Diagnostic
	for i, raw := range doc.Options {
		name, title := deref(raw.Name), deref(raw.Title)
		kind, kindErr := ParseKind(deref(raw.Type))
		if kindErr != nil {
			diags = append(diags, Diagnostic{Index: i, Title: title, Name: name, Err: kindErr})
			continue
		}
		def := deref(raw.Default)
		if def == "" {
			def = deref(raw.DefaultValue)
		}
		s.Options = append(s.Options, Option{
			Index:   i,
			Name:    name,
			Title:   title,
			Kind:    kind,
			Default: def,
		})
	}
	return s, diags, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Load reads and parses the description file at path.
func Load(path string) (*Schema, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("read description").
			WithResource(path).
			WithSuggestion("Check that the file exists and is readable").
			Wrap(err).
			BuildError()
	}

	s, diags, err := Parse(data, filepath.Base(path))
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("load description").
			WithResource(path).
			WithIssue(issue.DescriptionParseErrorId).
			WithSuggestion("Check that the file is valid JSON").
			WithSuggestion(`The document needs a "command" string and an "options" list`).
			Wrap(err).
			BuildError()
	}
	return s, diags, nil
}

// Name returns the command name a description file serves (its base name
// without the .json extension).
func Name(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
