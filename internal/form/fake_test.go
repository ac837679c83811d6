// SPDX-License-Identifier: MPL-2.0

package form

import "github.com/commando-cli/commando/internal/schema"

type (
	// fakeRenderer records every control it hands out so tests can play the
	// user by mutating the handles.
	fakeRenderer struct {
		calls    []string
		texts    []*fakeText
		checks   []*fakeCheck
		triggers []*fakeTrigger
	}

	fakeText struct {
		opt   schema.Option
		value string
		reads int
	}

	fakeCheck struct {
		opt     schema.Option
		checked bool
		reads   int
	}

	fakeTrigger struct {
		text *fakeText
		mode ChooserMode
	}
)

func (r *fakeRenderer) TextControl(opt schema.Option, initial string) TextHandle {
	r.calls = append(r.calls, "text:"+opt.Label())
	h := &fakeText{opt: opt, value: initial}
	r.texts = append(r.texts, h)
	return h
}

func (r *fakeRenderer) ChooserControl(opt schema.Option, mode ChooserMode, initial string) (TextHandle, Trigger) {
	r.calls = append(r.calls, "chooser("+mode.String()+"):"+opt.Label())
	h := &fakeText{opt: opt, value: initial}
	tr := &fakeTrigger{text: h, mode: mode}
	r.texts = append(r.texts, h)
	r.triggers = append(r.triggers, tr)
	return h, tr
}

func (r *fakeRenderer) CheckboxControl(opt schema.Option, initial bool) CheckHandle {
	r.calls = append(r.calls, "checkbox:"+opt.Label())
	h := &fakeCheck{opt: opt, checked: initial}
	r.checks = append(r.checks, h)
	return h
}

func (h *fakeText) Text() string {
	h.reads++
	return h.value
}

func (h *fakeCheck) Checked() bool {
	h.reads++
	return h.checked
}

// toggle inverts the checkbox the way a user click does.
func (h *fakeCheck) toggle() { h.checked = !h.checked }

func (t *fakeTrigger) Mode() ChooserMode { return t.mode }

// choose plays a chooser session against the trigger's text field.
func (t *fakeTrigger) choose(paths []string, dismissed bool) {
	t.text.value = ApplyChoice(t.text.value, t.mode, paths, dismissed)
}
