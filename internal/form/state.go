// SPDX-License-Identifier: MPL-2.0

package form

import "github.com/commando-cli/commando/internal/schema"

type (
	// OptionState is the run-time value of one option.
	OptionState struct {
		// Value is the current text. Collection kinds hold pre-quoted paths.
		Value string
		// Active reports whether the option may be emitted at all.
		Active bool
	}

	// Entry pairs a descriptor with its frozen state.
	Entry struct {
		Option schema.Option
		State  OptionState
	}
)
