// SPDX-License-Identifier: MPL-2.0

package form

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// Lint parses line as a shell command. It fails on lines the shell would
// reject, such as values with an unmatched double quote. Assemble never
// rewrites such lines; callers decide whether to warn.
func Lint(line string) error {
	_, err := parse(line)
	return err
}

// Fields returns the words of a single simple command after quote removal.
// Expansions are not performed; `$HOME` comes back empty.
func Fields(line string) ([]string, error) {
	file, err := parse(line)
	if err != nil {
		return nil, err
	}
	if len(file.Stmts) != 1 {
		return nil, fmt.Errorf("expected one command, got %d", len(file.Stmts))
	}
	call, ok := file.Stmts[0].Cmd.(*syntax.CallExpr)
	if !ok {
		return nil, fmt.Errorf("not a simple command")
	}

	fields := make([]string, 0, len(call.Args))
	for _, w := range call.Args {
		lit, err := expand.Literal(nil, w)
		if err != nil {
			return nil, fmt.Errorf("expand word: %w", err)
		}
		fields = append(fields, lit)
	}
	return fields, nil
}

func parse(line string) (*syntax.File, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return nil, fmt.Errorf("command line does not parse: %w", err)
	}
	return file, nil
}
