// SPDX-License-Identifier: MPL-2.0

package form

import "github.com/commando-cli/commando/internal/schema"

type (
	// Form is the ordered set of option states for one description.
	Form struct {
		command  string
		options  []schema.Option
		states   []OptionState
		bindings []binding
		frozen   bool
	}

	// binding holds the handles of one option; states[i] belongs to bindings[i].
	binding struct {
		text    TextHandle
		check   CheckHandle
		trigger Trigger
	}
)

// Build creates one control per option, in order, and seeds its state.
// Options whose kind has no policy are left out; Parse never produces them.
func Build(s *schema.Schema, r Renderer) *Form {
	f := &Form{
		command:  s.Command,
		options:  make([]schema.Option, 0, len(s.Options)),
		states:   make([]OptionState, 0, len(s.Options)),
		bindings: make([]binding, 0, len(s.Options)),
	}

	for _, opt := range s.Options {
		p, ok := policyFor(opt.Kind)
		if !ok {
			continue
		}

		state := OptionState{Active: p.initialActive(opt)}
		var b binding
		switch p.control {
		case controlCheckbox:
			b.check = r.CheckboxControl(opt, state.Active)
		case controlChooser:
			state.Value = opt.Default
			b.text, b.trigger = r.ChooserControl(opt, p.mode, state.Value)
		default:
			state.Value = opt.Default
			b.text = r.TextControl(opt, state.Value)
		}

		f.options = append(f.options, opt)
		f.states = append(f.states, state)
		f.bindings = append(f.bindings, b)
	}

	return f
}

// Options returns the options that received a control, in order.
func (f *Form) Options() []schema.Option {
	return f.options
}

// ReadBack reads every handle once and freezes the states. Later calls
// return the same snapshot without touching the renderer.
func (f *Form) ReadBack() []Entry {
	if !f.frozen {
		for i, b := range f.bindings {
			switch {
			case b.check != nil:
				f.states[i].Active = b.check.Checked()
			case b.text != nil:
				f.states[i].Value = b.text.Text()
			}
		}
		f.frozen = true
	}

	entries := make([]Entry, len(f.options))
	for i, opt := range f.options {
		entries[i] = Entry{Option: opt, State: f.states[i]}
	}
	return entries
}

// Command reads back the form and assembles the command line.
func (f *Form) Command() string {
	return Assemble(f.command, f.ReadBack())
}
