// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/commando-cli/commando/internal/form"
	"github.com/commando-cli/commando/internal/schema"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	keyCtrlC   = "ctrl+c"
	keyEsc     = "esc"
	keyEnter   = "enter"
	keyTab     = "tab"
	keyBackTab = "shift+tab"
	keyUp      = "up"
	keyDown    = "down"
	keySpace   = " "
	keyChoose  = "ctrl+o"
	keyFinish  = "ctrl+s"

	// chooserChrome is the number of lines around the picker in the overlay.
	chooserChrome = 4
)

const (
	rowText rowKind = iota
	rowChooser
	rowCheckbox
)

// All type declarations in a single block for decorder compliance.
type (
	rowKind int

	// row is one control. It is also the handle the form reads back, so the
	// renderer never holds option state of its own.
	row struct {
		opt     schema.Option
		kind    rowKind
		mode    form.ChooserMode
		input   textinput.Model
		checked bool
	}

	// formStyles are built on a renderer bound to the output writer so color
	// detection follows stderr rather than a redirected stdout.
	formStyles struct {
		title    lipgloss.Style
		label    lipgloss.Style
		focused  lipgloss.Style
		flag     lipgloss.Style
		trigger  lipgloss.Style
		help     lipgloss.Style
		checkbox lipgloss.Style
	}

	// formModel is the Bubble Tea model behind FormRenderer.
	formModel struct {
		title     string
		rows      []*row
		focus     int
		chooser   *chooserModel
		width     int
		height    int
		done      bool
		confirmed bool
		styles    formStyles
	}

	// FormRenderer shows all options at once in a full-screen form.
	FormRenderer struct {
		cfg   Config
		model *formModel
	}
)

// NewFormRenderer creates an empty form; controls are added by form.Build.
func NewFormRenderer(cfg Config) *FormRenderer {
	return &FormRenderer{
		cfg: cfg,
		model: &formModel{
			title:  cfg.Title,
			styles: newFormStyles(lipgloss.NewRenderer(outputWriter(cfg))),
		},
	}
}

func newFormStyles(r *lipgloss.Renderer) formStyles {
	return formStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		label:    r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		focused:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		flag:     r.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		trigger:  r.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		help:     r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		checkbox: r.NewStyle().Foreground(lipgloss.Color("#10B981")),
	}
}

// TextControl implements form.Renderer.
func (r *FormRenderer) TextControl(opt schema.Option, initial string) form.TextHandle {
	return r.model.addRow(&row{opt: opt, kind: rowText, input: newInput(initial)})
}

// ChooserControl implements form.Renderer.
func (r *FormRenderer) ChooserControl(opt schema.Option, mode form.ChooserMode, initial string) (form.TextHandle, form.Trigger) {
	rw := r.model.addRow(&row{opt: opt, kind: rowChooser, mode: mode, input: newInput(initial)})
	return rw, rw
}

// CheckboxControl implements form.Renderer.
func (r *FormRenderer) CheckboxControl(opt schema.Option, initial bool) form.CheckHandle {
	return r.model.addRow(&row{opt: opt, kind: rowCheckbox, checked: initial})
}

// Run shows the form until the user confirms or cancels. Cancellation,
// including a cancelled context, is reported as (false, nil).
func (r *FormRenderer) Run(ctx context.Context) (bool, error) {
	p := tea.NewProgram(r.model,
		tea.WithContext(ctx),
		tea.WithInput(inputReader(r.cfg)),
		tea.WithOutput(outputWriter(r.cfg)),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return false, nil
		}
		return false, fmt.Errorf("form renderer: %w", err)
	}
	return r.model.confirmed, nil
}

func newInput(initial string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(initial)
	ti.CursorEnd()
	return ti
}

// Text implements form.TextHandle.
func (rw *row) Text() string { return rw.input.Value() }

// Checked implements form.CheckHandle.
func (rw *row) Checked() bool { return rw.checked }

// Mode implements form.Trigger.
func (rw *row) Mode() form.ChooserMode { return rw.mode }

func (m *formModel) addRow(rw *row) *row {
	m.rows = append(m.rows, rw)
	if len(m.rows) == 1 {
		m.setFocus(0)
	}
	return rw
}

// setFocus moves focus to row i, wrapping around both ends.
func (m *formModel) setFocus(i int) {
	if len(m.rows) == 0 {
		return
	}
	if cur := m.rows[m.focus]; cur.kind != rowCheckbox {
		cur.input.Blur()
	}
	m.focus = (i + len(m.rows)) % len(m.rows)
	if next := m.rows[m.focus]; next.kind != rowCheckbox {
		next.input.Focus()
	}
}

// Init implements tea.Model.
func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.chooser != nil {
			return m, m.chooser.Update(m.chooserSize())
		}
		return m, nil

	case chooserDoneMsg:
		if msg.row >= 0 && msg.row < len(m.rows) {
			rw := m.rows[msg.row]
			rw.input.SetValue(form.ApplyChoice(rw.input.Value(), rw.mode, msg.paths, msg.dismissed))
			rw.input.CursorEnd()
		}
		m.chooser = nil
		return m, nil

	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			return m.finish(false)
		}
		if m.chooser != nil {
			return m, m.chooser.Update(msg)
		}
		return m.handleKey(msg)
	}

	if m.chooser != nil {
		return m, m.chooser.Update(msg)
	}
	return m, m.updateFocused(msg)
}

func (m *formModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		return m.finish(false)
	case keyEnter:
		return m.finish(true)
	case keyTab, keyDown:
		m.setFocus(m.focus + 1)
		return m, nil
	case keyBackTab, keyUp:
		m.setFocus(m.focus - 1)
		return m, nil
	}

	if len(m.rows) == 0 {
		return m, nil
	}
	rw := m.rows[m.focus]

	switch {
	case rw.kind == rowCheckbox && msg.String() == keySpace:
		rw.checked = !rw.checked
		return m, nil
	case rw.kind == rowChooser && msg.String() == keyChoose:
		return m, m.openChooser(m.focus)
	}
	return m, m.updateFocused(msg)
}

func (m *formModel) updateFocused(msg tea.Msg) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	rw := m.rows[m.focus]
	if rw.kind == rowCheckbox {
		return nil
	}
	var cmd tea.Cmd
	rw.input, cmd = rw.input.Update(msg)
	return cmd
}

func (m *formModel) openChooser(i int) tea.Cmd {
	rw := m.rows[i]
	m.chooser = newChooserModel(i, rw.opt.Label(), rw.mode, rw.input.Value())
	if m.height > 0 {
		m.chooser.Update(m.chooserSize())
	}
	return m.chooser.Init()
}

func (m *formModel) chooserSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: max(m.height-chooserChrome, 1)}
}

func (m *formModel) finish(confirmed bool) (tea.Model, tea.Cmd) {
	m.done = true
	m.confirmed = confirmed
	m.chooser = nil
	return m, tea.Quit
}

// View implements tea.Model.
func (m *formModel) View() string {
	if m.done {
		return ""
	}
	if m.chooser != nil {
		return m.chooser.View()
	}

	s := m.styles
	var b strings.Builder
	if m.title != "" {
		b.WriteString(s.title.Render(m.title))
		b.WriteString("\n\n")
	}

	for i, rw := range m.rows {
		label := s.label
		cursor := "  "
		if i == m.focus {
			label = s.focused
			cursor = s.focused.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(label.Render(rw.opt.Label()))
		if rw.opt.Name != "" {
			b.WriteString(" ")
			b.WriteString(s.flag.Render(rw.opt.Name))
		}
		b.WriteString("\n    ")

		switch rw.kind {
		case rowCheckbox:
			box := "[ ]"
			if rw.checked {
				box = "[x]"
			}
			b.WriteString(s.checkbox.Render(box))
		case rowChooser:
			b.WriteString(rw.input.View())
			b.WriteString("  ")
			b.WriteString(s.trigger.Render("[choose " + rw.mode.String() + ": ctrl+o]"))
		default:
			b.WriteString(rw.input.View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.help.Render("tab/↑/↓ move • space toggle • ctrl+o choose • enter confirm • esc cancel"))

	view := b.String()
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}
	return view
}
