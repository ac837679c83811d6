// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/commando-cli/commando/internal/config"
	"github.com/commando-cli/commando/internal/form"
	"github.com/commando-cli/commando/internal/tui"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logPrefix = "commando"

	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

type (
	// App wires CLI services and shared dependencies. Cobra handlers receive an
	// App and never reach for os.Stdout or os.Stderr directly.
	App struct {
		Config     config.Provider
		NewSession SessionFactory
		argv0      string
		stdin      io.Reader
		stdout     io.Writer
		stderr     io.Writer
		// verbose is set by the flags and ui.verbose while a command runs.
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config     config.Provider
		NewSession SessionFactory
		// Argv0 is the invocation name used for link-style invocation.
		Argv0  string
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// SessionFactory creates the renderer session for one form.
	SessionFactory func(tui.Config) form.Session

	nopCloser struct{}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:     deps.Config,
		NewSession: deps.NewSession,
		argv0:      deps.Argv0,
		stdin:      deps.Stdin,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.NewSession == nil {
		app.NewSession = tui.NewSession
	}
	if app.argv0 == "" && len(os.Args) > 0 {
		app.argv0 = os.Args[0]
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// newLogger builds the stderr logger for one invocation. When the config
// names a log file, records are also written to a rotating file; the returned
// closer releases it.
func (a *App) newLogger(cfg *config.Config, verbose bool) (*log.Logger, io.Closer) {
	out := a.stderr
	var closer io.Closer = nopCloser{}
	if cfg.Log.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
		out = io.MultiWriter(a.stderr, file)
		closer = file
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          logPrefix,
		ReportTimestamp: cfg.Log.File != "",
	})

	level, err := log.ParseLevel(cfg.Log.Level.String())
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return logger, closer
}

func (nopCloser) Close() error { return nil }
