// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/commando-cli/commando/internal/form"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	// chooserDoneMsg closes the chooser overlay. Paths are in selection order.
	chooserDoneMsg struct {
		row       int
		paths     []string
		dismissed bool
	}

	// chooserModel wraps a file picker for one chooser row. Multi modes keep
	// the picker open and collect selections until ctrl+s.
	chooserModel struct {
		row      int
		title    string
		mode     form.ChooserMode
		picker   filepicker.Model
		selected []string
	}
)

func newChooserModel(row int, title string, mode form.ChooserMode, current string) *chooserModel {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir(mode, current)
	fp.DirAllowed = mode.Directories()
	fp.FileAllowed = !mode.Directories()
	fp.AutoHeight = true

	return &chooserModel{row: row, title: title, mode: mode, picker: fp}
}

// startDir opens the picker next to the current single path when it exists,
// otherwise in the working directory.
func startDir(mode form.ChooserMode, current string) string {
	if !mode.Multiple() && current != "" {
		if info, err := os.Stat(current); err == nil {
			if info.IsDir() {
				return filepath.Dir(filepath.Clean(current))
			}
			return filepath.Dir(current)
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Init implements tea.Model.
func (c *chooserModel) Init() tea.Cmd {
	return c.picker.Init()
}

// Update handles a message and returns the follow-up command. A finished
// chooser returns a command producing chooserDoneMsg.
func (c *chooserModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			return c.finish(true)
		case keyFinish:
			if c.mode.Multiple() {
				return c.finish(false)
			}
		}
	}

	var cmd tea.Cmd
	c.picker, cmd = c.picker.Update(msg)

	if didSelect, path := c.picker.DidSelectFile(msg); didSelect {
		if c.add(path) {
			return c.finish(false)
		}
	}
	return cmd
}

// add records a selection and reports whether the chooser is complete.
// Selecting a path twice in a multi mode removes it again.
func (c *chooserModel) add(path string) bool {
	if !c.mode.Multiple() {
		c.selected = []string{path}
		return true
	}
	if i := slices.Index(c.selected, path); i >= 0 {
		c.selected = slices.Delete(c.selected, i, i+1)
		return false
	}
	c.selected = append(c.selected, path)
	return false
}

func (c *chooserModel) finish(dismissed bool) tea.Cmd {
	done := chooserDoneMsg{row: c.row, paths: slices.Clone(c.selected), dismissed: dismissed}
	return func() tea.Msg { return done }
}

// View renders the picker with a title and key help.
func (c *chooserModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	lines := []string{titleStyle.Render(c.title + " (" + c.mode.String() + ")")}
	if len(c.selected) > 0 {
		lines = append(lines, selStyle.Render(form.JoinPaths(c.mode, c.selected)))
	}
	lines = append(lines, c.picker.View())

	help := "enter select • esc cancel"
	if c.mode.Multiple() {
		help = "enter add/remove • ctrl+s done • esc cancel"
	}
	lines = append(lines, helpStyle.Render(help))
	return strings.Join(lines, "\n")
}
