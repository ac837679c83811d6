// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/commando-cli/commando/internal/discovery"
	"github.com/commando-cli/commando/internal/form"
	"github.com/commando-cli/commando/internal/schema"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const showWordWrap = 100

func newShowCommand(app *App, flags *rootFlags) *cobra.Command {
	var raw bool

	showCmd := &cobra.Command{
		Use:   "show [command]",
		Short: "Describe the options of a command's form",
		Long: `Render a summary of a description: the base command and, per option,
its label, flag, kind and default. Options that the form would skip are
listed with the reason.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}
			file, err := app.locator(cfg, flags).Locate(name)
			if err != nil {
				return fail(err)
			}
			s, diags, err := schema.Load(file.Path)
			if err != nil {
				return fail(err)
			}

			md := describeMarkdown(file, s, diags)
			if raw {
				_, err = io.WriteString(app.stdout, md)
				return err
			}
			out, err := renderMarkdown(app.stdout, md)
			if err != nil {
				return fail(fmt.Errorf("render description: %w", err))
			}
			_, err = io.WriteString(app.stdout, out)
			return err
		},
	}

	showCmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source instead of rendering it")
	return showCmd
}

// describeMarkdown summarizes a description as Markdown.
func describeMarkdown(file *discovery.DiscoveredFile, s *schema.Schema, diags []schema.Diagnostic) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", file.Name)
	fmt.Fprintf(&b, "Base command: `%s`  \n", s.Command)
	fmt.Fprintf(&b, "Description: `%s` (%s)\n\n", file.Path, file.Source)

	if len(s.Options) == 0 {
		b.WriteString("The form has no options.\n")
	} else {
		b.WriteString("| # | Label | Flag | Kind | Default |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, opt := range s.Options {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				opt.Index+1,
				cell(opt.Label()),
				code(opt.Name),
				kindCell(opt.Kind),
				code(opt.Default))
		}
	}

	if len(diags) > 0 {
		b.WriteString("\n## Skipped options\n\n")
		for _, d := range diags {
			label := d.Title
			if label == "" {
				label = d.Name
			}
			if label == "" {
				label = "untitled"
			}
			fmt.Fprintf(&b, "- #%d %s: %s\n", d.Index+1, cell(label), d.Err)
		}
	}

	return b.String()
}

func kindCell(k schema.Kind) string {
	if mode := form.ModeFor(k); mode != form.ChooserNone {
		return fmt.Sprintf("%s (chooser, %s)", k, mode)
	}
	return string(k)
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func code(s string) string {
	if s == "" {
		return ""
	}
	return "`" + cell(s) + "`"
}

// renderMarkdown renders md for w. Terminals get the auto-detected style;
// pipes and files get plain text.
func renderMarkdown(w io.Writer, md string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(showWordWrap)}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
