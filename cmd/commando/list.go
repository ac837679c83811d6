// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/commando-cli/commando/internal/discovery"

	"github.com/spf13/cobra"
)

func newListCommand(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list [pattern]",
		Short: "List the available descriptions",
		Long: `List the descriptions found through the search path.

A description shadowed by one with the same name earlier in the search path
is reported in verbose mode. The optional pattern filters command names with
glob syntax, e.g. 'g*' or '{grep,tar}'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pattern string
			if len(args) > 0 {
				pattern = args[0]
			}
			return listDescriptions(cmd, app, flags, pattern)
		},
	}
}

func listDescriptions(cmd *cobra.Command, app *App, flags *rootFlags, pattern string) error {
	cfg, err := app.loadConfig(cmd.Context(), flags)
	if err != nil {
		return err
	}
	logger, closer := app.newLogger(cfg, app.verbose)
	defer closer.Close()

	locator := discovery.New(cfg)
	files, diags, err := locator.List(pattern)
	if err != nil {
		return fail(err)
	}
	for _, d := range diags {
		if d.Code == discovery.CodeDescriptionShadowed {
			logger.Debug(d.Message, "code", d.Code, "path", d.Path)
			continue
		}
		logger.Warn(d.Message, "code", d.Code, "path", d.Path, "err", d.Cause)
	}

	if len(files) == 0 {
		dirs, _ := locator.Dirs()
		fmt.Fprintln(app.stderr, SubtitleStyle.Render("No descriptions found in "+strings.Join(dirs, ", ")))
		return nil
	}

	width := 0
	for _, f := range files {
		width = max(width, len(f.Name))
	}
	for _, f := range files {
		fmt.Fprintf(app.stdout, "%s  %s\n", CmdStyle.Render(fmt.Sprintf("%-*s", width, f.Name)), SubtitleStyle.Render(f.Path))
	}
	if app.verbose {
		_, source := locator.Dirs()
		fmt.Fprintln(app.stderr, VerboseStyle.Render(fmt.Sprintf("%d description(s) from the %s directories", len(files), source)))
	}
	return nil
}
