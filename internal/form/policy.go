// SPDX-License-Identifier: MPL-2.0

package form

import (
	"strings"

	"github.com/commando-cli/commando/internal/schema"
)

const (
	// ChooserNone marks kinds without a chooser.
	ChooserNone ChooserMode = iota
	// ChooserFile selects one file.
	ChooserFile
	// ChooserFiles selects several files.
	ChooserFiles
	// ChooserDirectory selects one folder.
	ChooserDirectory
	// ChooserDirectories selects several folders.
	ChooserDirectories
)

const (
	controlText control = iota
	controlChooser
	controlCheckbox
)

type (
	// ChooserMode restricts what a chooser may select.
	ChooserMode int

	// control is the renderer capability a kind requests.
	control int

	// policy is everything that differs between kinds.
	policy struct {
		control control
		mode    ChooserMode
		// initialActive is the active flag at creation.
		initialActive func(schema.Option) bool
		// emits reports whether a frozen state contributes tokens.
		emits func(OptionState) bool
		// write appends the option's tokens, leading space included.
		write func(*strings.Builder, schema.Option, OptionState)
	}
)

// policies is the activation and serialization table. Booleans start as
// their default says and emit a bare flag; every other kind starts active
// and emits a quoted value only when the value is non-blank.
var policies = map[schema.Kind]policy{
	schema.KindText:        valuePolicy(controlText, ChooserNone),
	schema.KindFile:        valuePolicy(controlChooser, ChooserFile),
	schema.KindFiles:       valuePolicy(controlChooser, ChooserFiles),
	schema.KindDirectory:   valuePolicy(controlChooser, ChooserDirectory),
	schema.KindDirectories: valuePolicy(controlChooser, ChooserDirectories),
	schema.KindBoolean: {
		control:       controlCheckbox,
		initialActive: schema.Option.DefaultChecked,
		emits:         func(s OptionState) bool { return s.Active },
		write:         writeFlag,
	},
}

func valuePolicy(c control, mode ChooserMode) policy {
	return policy{
		control:       c,
		mode:          mode,
		initialActive: func(schema.Option) bool { return true },
		emits: func(s OptionState) bool {
			return s.Active && strings.TrimSpace(s.Value) != ""
		},
		write: writeValue,
	}
}

func policyFor(k schema.Kind) (policy, bool) {
	p, ok := policies[k]
	return p, ok
}

// writeFlag emits " name". An unnamed boolean still contributes the space.
func writeFlag(b *strings.Builder, opt schema.Option, _ OptionState) {
	b.WriteByte(' ')
	b.WriteString(opt.Name)
}

// writeValue emits ` name "value"` or ` "value"`. The value is wrapped
// verbatim; embedded double quotes are not escaped.
func writeValue(b *strings.Builder, opt schema.Option, s OptionState) {
	b.WriteByte(' ')
	if opt.Name != "" {
		b.WriteString(opt.Name)
		b.WriteByte(' ')
	}
	b.WriteByte('"')
	b.WriteString(s.Value)
	b.WriteByte('"')
}

// ModeFor returns the chooser mode a kind uses, ChooserNone for text and boolean.
func ModeFor(k schema.Kind) ChooserMode {
	p, ok := policyFor(k)
	if !ok {
		return ChooserNone
	}
	return p.mode
}

// Multiple reports whether the mode selects more than one path.
func (m ChooserMode) Multiple() bool {
	return m == ChooserFiles || m == ChooserDirectories
}

// Directories reports whether the mode selects folders rather than files.
func (m ChooserMode) Directories() bool {
	return m == ChooserDirectory || m == ChooserDirectories
}

// String returns the kind name the mode serves.
func (m ChooserMode) String() string {
	switch m {
	case ChooserFile:
		return "file"
	case ChooserFiles:
		return "files"
	case ChooserDirectory:
		return "directory"
	case ChooserDirectories:
		return "directories"
	default:
		return "none"
	}
}
