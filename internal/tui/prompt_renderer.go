// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/commando-cli/commando/internal/form"
	"github.com/commando-cli/commando/internal/schema"

	"github.com/charmbracelet/huh"
)

const (
	confirmTitle = "Print the command?"

	// clearAnswer empties a seeded field. A blank answer keeps the seed.
	clearAnswer = "<clear>"
)

var (
	// ErrNotADirectory is returned when a directory chooser is given a file.
	ErrNotADirectory = errors.New("not a directory")
	// ErrIsADirectory is returned when a file chooser is given a directory.
	ErrIsADirectory = errors.New("is a directory")
)

type (
	// promptValue is one question of the prompt session. Like the form rows
	// it doubles as the handle read back by form.Build.
	promptValue struct {
		opt     schema.Option
		kind    rowKind
		mode    form.ChooserMode
		initial string
		text    string
		checked bool
	}

	// PromptRenderer asks one question per option on a line-oriented
	// terminal. Chooser options take typed paths instead of a picker.
	PromptRenderer struct {
		cfg    Config
		values []*promptValue
	}
)

// NewPromptRenderer creates an empty prompt session.
func NewPromptRenderer(cfg Config) *PromptRenderer {
	return &PromptRenderer{cfg: cfg}
}

// TextControl implements form.Renderer.
func (r *PromptRenderer) TextControl(opt schema.Option, initial string) form.TextHandle {
	return r.add(&promptValue{opt: opt, kind: rowText, initial: initial, text: initial})
}

// ChooserControl implements form.Renderer.
func (r *PromptRenderer) ChooserControl(opt schema.Option, mode form.ChooserMode, initial string) (form.TextHandle, form.Trigger) {
	v := r.add(&promptValue{opt: opt, kind: rowChooser, mode: mode, initial: initial, text: initial})
	return v, v
}

// CheckboxControl implements form.Renderer.
func (r *PromptRenderer) CheckboxControl(opt schema.Option, initial bool) form.CheckHandle {
	return r.add(&promptValue{opt: opt, kind: rowCheckbox, checked: initial})
}

func (r *PromptRenderer) add(v *promptValue) *promptValue {
	r.values = append(r.values, v)
	return v
}

// Run asks every question and a final confirmation. Aborting, or answering
// no to the confirmation, reports (false, nil).
func (r *PromptRenderer) Run(ctx context.Context) (bool, error) {
	fields := make([]huh.Field, 0, len(r.values)+2)
	if r.cfg.Title != "" {
		fields = append(fields, huh.NewNote().Title(r.cfg.Title))
	}
	for _, v := range r.values {
		fields = append(fields, v.field())
	}

	confirmed := true
	fields = append(fields, huh.NewConfirm().
		Title(confirmTitle).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed))

	f := huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(true).
		WithInput(inputReader(r.cfg)).
		WithOutput(outputWriter(r.cfg)).
		WithTheme(getHuhTheme(r.cfg.Theme))

	if err := f.RunWithContext(ctx); err != nil {
		if ctx.Err() != nil || errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("prompt renderer: %w", err)
	}
	if !confirmed {
		return false, nil
	}
	if err := r.settle(); err != nil {
		return false, err
	}
	return true, nil
}

// settle turns the typed answers into the text the form reads back.
func (r *PromptRenderer) settle() error {
	for _, v := range r.values {
		if v.kind == rowCheckbox {
			continue
		}
		if strings.TrimSpace(v.text) == clearAnswer {
			v.text = ""
			continue
		}
		if v.kind != rowChooser {
			continue
		}
		text, err := normalizeChoice(v.mode, v.initial, v.text)
		if err != nil {
			return err
		}
		v.text = text
	}
	return nil
}

func (v *promptValue) field() huh.Field {
	switch v.kind {
	case rowCheckbox:
		return huh.NewConfirm().
			Title(v.opt.Label()).
			Description(v.opt.Name).
			Affirmative("Yes").
			Negative("No").
			Value(&v.checked)
	case rowChooser:
		return huh.NewInput().
			Title(v.opt.Label()).
			Description(seedHint(chooserHint(v.opt.Name, v.mode), v.initial)).
			Value(&v.text).
			Validate(v.validate)
	default:
		return huh.NewInput().
			Title(v.opt.Label()).
			Description(seedHint(v.opt.Name, v.initial)).
			Value(&v.text)
	}
}

// seedHint tells how to keep or clear a seeded answer; prompts return the
// seed for a blank line.
func seedHint(desc, initial string) string {
	if initial == "" {
		return desc
	}
	hint := fmt.Sprintf("enter keeps %q, %s empties it", initial, clearAnswer)
	if desc == "" {
		return hint
	}
	return desc + " (" + hint + ")"
}

func chooserHint(name string, mode form.ChooserMode) string {
	hint := "path to a " + mode.String()
	if mode.Multiple() {
		hint = mode.String() + ` separated by spaces, "quote paths" with spaces`
	}
	if name == "" {
		return hint
	}
	return name + ": " + hint
}

// validate accepts the unchanged seed, a blank or clearing answer and paths
// that exist with the type the mode asks for.
func (v *promptValue) validate(s string) error {
	if trimmed := strings.TrimSpace(s); s == v.initial || trimmed == "" || trimmed == clearAnswer {
		return nil
	}
	paths := []string{strings.TrimSpace(s)}
	if v.mode.Multiple() {
		var err error
		if paths, err = form.Fields(s); err != nil {
			return err
		}
	}
	for _, p := range paths {
		if err := checkPath(p, v.mode.Directories()); err != nil {
			return err
		}
	}
	return nil
}

func checkPath(path string, wantDir bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	switch {
	case wantDir && !info.IsDir():
		return fmt.Errorf("%s: %w", path, ErrNotADirectory)
	case !wantDir && info.IsDir():
		return fmt.Errorf("%s: %w", path, ErrIsADirectory)
	}
	return nil
}

// normalizeChoice turns a typed answer into the text a chooser would have
// left. The seed is returned verbatim when it was not edited.
func normalizeChoice(mode form.ChooserMode, initial, typed string) (string, error) {
	if typed == initial {
		return initial, nil
	}
	typed = strings.TrimSpace(typed)
	if !mode.Multiple() || typed == "" {
		return typed, nil
	}
	paths, err := form.Fields(typed)
	if err != nil {
		return "", fmt.Errorf("read %s paths: %w", mode, err)
	}
	return form.JoinPaths(mode, paths), nil
}

// Text implements form.TextHandle.
func (v *promptValue) Text() string { return v.text }

// Checked implements form.CheckHandle.
func (v *promptValue) Checked() bool { return v.checked }

// Mode implements form.Trigger.
func (v *promptValue) Mode() form.ChooserMode { return v.mode }
