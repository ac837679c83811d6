// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"io"
	"os"

	"github.com/commando-cli/commando/internal/config"
	"github.com/commando-cli/commando/internal/form"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Config holds common configuration for the renderers.
type Config struct {
	// Title is shown above the controls, usually the base command.
	Title string
	// Theme selects the colors.
	Theme config.Theme
	// Accessible selects the line-oriented prompt renderer.
	Accessible bool
	// Input is where keystrokes come from (default: stdin).
	Input io.Reader
	// Output receives the UI. It is never stdout, which carries the command line.
	Output io.Writer
}

// NewSession returns the renderer the configuration asks for.
func NewSession(cfg Config) form.Session {
	if shouldUseAccessible(cfg) {
		return NewPromptRenderer(cfg)
	}
	return NewFormRenderer(cfg)
}

// isInputTerminal returns true if stdin is connected to a terminal.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// shouldUseAccessible reports whether the prompt renderer must be used. A
// full-screen form needs a terminal on stdin, so a redirected stdin forces
// prompts even when cfg.Accessible is false.
func shouldUseAccessible(cfg Config) bool {
	return cfg.Accessible || !isInputTerminal()
}

func inputReader(cfg Config) io.Reader {
	if cfg.Input != nil {
		return cfg.Input
	}
	return os.Stdin
}

func outputWriter(cfg Config) io.Writer {
	if cfg.Output != nil {
		return cfg.Output
	}
	return os.Stderr
}

// getHuhTheme converts a Theme to a huh.Theme.
func getHuhTheme(t config.Theme) *huh.Theme {
	switch t {
	case config.ThemeCharm:
		return huh.ThemeCharm()
	case config.ThemeDracula:
		return huh.ThemeDracula()
	case config.ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case config.ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
