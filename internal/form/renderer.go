// SPDX-License-Identifier: MPL-2.0

package form

import (
	"context"
	"errors"

	"github.com/commando-cli/commando/internal/schema"
)

// ErrCancelled is returned by renderers when the user dismisses the form.
var ErrCancelled = errors.New("form cancelled")

type (
	// TextHandle is a renderer-owned text control.
	TextHandle interface {
		// Text returns the control's current text.
		Text() string
	}

	// CheckHandle is a renderer-owned checkbox.
	CheckHandle interface {
		// Checked returns the checkbox's current state.
		Checked() bool
	}

	// Trigger opens a chooser for the text control it was created with.
	// Renderers write the chooser result through ApplyChoice.
	Trigger interface {
		Mode() ChooserMode
	}

	// Renderer creates controls. It holds handles only; option state stays
	// in the Form.
	Renderer interface {
		TextControl(opt schema.Option, initial string) TextHandle
		ChooserControl(opt schema.Option, mode ChooserMode, initial string) (TextHandle, Trigger)
		CheckboxControl(opt schema.Option, initial bool) CheckHandle
	}

	// Session is a Renderer that can present its controls and wait for the
	// user. Run returns false when the user cancelled.
	Session interface {
		Renderer
		Run(ctx context.Context) (bool, error)
	}
)
