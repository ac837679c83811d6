// SPDX-License-Identifier: MPL-2.0

// Package tui implements the terminal renderers for commando forms.
//
// FormRenderer is a full-screen Bubble Tea form with one row per option and
// a file picker overlay for chooser rows. PromptRenderer asks one question
// per option through huh in accessible mode, for screen readers and for
// sessions where stdin is not a terminal. Both draw on stderr so that
// $(commando ...) captures only the command line.
package tui
