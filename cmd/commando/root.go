// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the commando CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/commando-cli/commando/internal/config"
	"github.com/commando-cli/commando/internal/discovery"
	"github.com/commando-cli/commando/internal/form"
	"github.com/commando-cli/commando/internal/issue"
	"github.com/commando-cli/commando/internal/schema"
	"github.com/commando-cli/commando/internal/tui"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const helpStyle = "auto"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the flag values of one command tree.
type rootFlags struct {
	description string
	configFile  string
	verbose     bool
	accessible  bool
	theme       string
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "commando [flags] <command>",
		Short: "Build a command line from a form",
		Long: TitleStyle.Render("commando") + SubtitleStyle.Render(" - build a command line from a form") + `

commando reads a JSON description of a command's options, shows them as a
form and prints the assembled command line on stdout. Cancelling prints
nothing and exits with status 1.

Run without <command> under another name (a link such as grep -> commando),
the link name is the command.

Descriptions are looked up as <command>.json in $` + config.EnvSearchPath + `, the
search_path from the config file, or /usr/local/etc/commando, /etc/commando
and the descriptions directory next to the executable.

` + SubtitleStyle.Render("Examples:") + `
  commando grep               Show the form for grep
  eval "$(commando tar)"      Run what the form assembled
  commando -d ./my.json       Use a description file directly
  commando -- list            Show the form for a command named like a subcommand
  commando list               List the available descriptions`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.verbose = flags.verbose
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd.Context(), app, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.description, "description", "d", "", "description file to use instead of searching for <command>.json")
	pf.StringVar(&flags.configFile, "config", "", "config file (default is <config dir>/commando/config.cue)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.Flags().BoolVar(&flags.accessible, "accessible", false, "ask one question per line instead of showing the full-screen form")
	rootCmd.Flags().StringVar(&flags.theme, "theme", "", "color theme (default, charm, dracula, catppuccin, base16)")

	rootCmd.AddCommand(
		newListCommand(app, flags),
		newShowCommand(app, flags),
		newConfigCommand(app, flags),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the CLI and exits with the code of the outcome. It is called
// by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// runForm locates the description, shows the form and prints the command.
func runForm(ctx context.Context, app *App, flags *rootFlags, args []string) error {
	cfg, err := app.loadConfig(ctx, flags)
	if err != nil {
		return err
	}
	theme, err := resolveTheme(flags.theme, cfg)
	if err != nil {
		return fail(err)
	}

	logger, closer := app.newLogger(cfg, app.verbose)
	defer closer.Close()

	file, err := app.locator(cfg, flags).Locate(discovery.CommandName(app.argv0, args))
	if err != nil {
		return fail(err)
	}
	logger.Debug("using description", "path", file.Path, "source", file.Source)

	s, diags, err := schema.Load(file.Path)
	if err != nil {
		return fail(err)
	}
	for _, d := range diags {
		logger.Error("skipping option", "file", file.Path, "index", d.Index, "title", d.Title, "name", d.Name, "err", d.Err)
	}

	session := app.NewSession(tui.Config{
		Title:      s.Command,
		Theme:      theme,
		Accessible: flags.accessible || cfg.UI.Accessible || os.Getenv("ACCESSIBLE") != "",
		Input:      app.stdin,
		Output:     app.stderr,
	})
	f := form.Build(s, session)

	confirmed, err := session.Run(ctx)
	if err != nil {
		return fail(issue.NewErrorContext().
			WithOperation("show form").
			WithResource(file.Path).
			WithSuggestion("Retry with --accessible to answer one question per line").
			WithIssue(issue.RendererFailedId).
			Wrap(err).
			BuildError())
	}
	if !confirmed {
		logger.Debug("form cancelled")
		return &ExitError{Code: ExitCancelled, Err: form.ErrCancelled, Silent: true}
	}

	line := f.Command()
	if err := form.Lint(line); err != nil {
		logger.Warn("assembled command may not run as shown", "err", err)
	}
	if _, err := fmt.Fprintln(app.stdout, line); err != nil {
		return fail(fmt.Errorf("write command: %w", err))
	}
	return nil
}

// loadConfig loads the configuration and folds ui.verbose into the
// verbose setting used for error output.
func (a *App) loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configFile})
	if err != nil {
		return nil, fail(err)
	}
	a.verbose = a.verbose || cfg.UI.Verbose
	return cfg, nil
}

func (a *App) locator(cfg *config.Config, flags *rootFlags) *discovery.Locator {
	var opts []discovery.Option
	if flags.description != "" {
		opts = append(opts, discovery.WithOverride(flags.description))
	}
	return discovery.New(cfg, opts...)
}

// resolveTheme prefers --theme over ui.theme.
func resolveTheme(flag string, cfg *config.Config) (config.Theme, error) {
	if flag == "" {
		return cfg.UI.Theme, nil
	}
	theme := config.Theme(flag)
	if ok, errs := theme.IsValid(); !ok {
		return "", errs[0]
	}
	return theme, nil
}

// fail marks err as fatal.
func fail(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

// handleError prints fatal errors. Cancellation is silent. Errors carrying
// suggestions are formatted here; everything else, such as flag parsing
// errors, goes through fang's default handler.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Silent {
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		if exitErr != nil && exitErr.Err != nil {
			err = exitErr.Err
		}
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
	if !a.verbose {
		return
	}
	if help, helpErr := ae.Help(helpStyle); helpErr == nil && help != "" {
		fmt.Fprint(w, help)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
