// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/commando-cli/commando/internal/discovery"
	"github.com/commando-cli/commando/internal/schema"
	"github.com/commando-cli/commando/internal/testutil"
)

func TestList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteDescription(t, dir, "grep", grepDoc)
	testutil.WriteDescription(t, dir, "tar", `{"command":"tar","options":[]}`)
	testutil.WriteDescription(t, dir, "git", `{"command":"git","options":[]}`)

	h := newHarness(t, dir)
	if err := h.run("list", "g*"); err != nil {
		t.Fatalf("list error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", h.stdout.String())
	}
	if !strings.HasPrefix(lines[0], "git ") || !strings.HasPrefix(lines[1], "grep") {
		t.Errorf("unexpected order:\n%s", h.stdout.String())
	}
	if !strings.Contains(lines[1], dir) {
		t.Errorf("line should carry the file path: %q", lines[1])
	}
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	h := newHarness(t, dir)
	if err := h.run("list"); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if h.stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", h.stdout.String())
	}
	if !strings.Contains(h.stderr.String(), "No descriptions found in "+dir) {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestList_BadPattern(t *testing.T) {
	t.Parallel()

	h := newHarness(t, t.TempDir())
	if err := h.run("list", "[a-"); exitCode(err) != ExitFailure {
		t.Errorf("list with a bad pattern: err = %v", err)
	}
}

func TestShow_Raw(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteDescription(t, dir, "cp", `{"command":"cp","options":[
		{"name":"-r","title":"Recursive","type":"boolean","default":"true"},
		{"title":"Source","type":"files"},
		{"title":"a|b","type":"dial"}
	]}`)

	h := newHarness(t, dir)
	if err := h.run("show", "--raw", "cp"); err != nil {
		t.Fatalf("show error = %v", err)
	}

	out := h.stdout.String()
	for _, want := range []string{
		"# cp",
		"Base command: `cp`",
		"| 1 | Recursive | `-r` | boolean | `true` |",
		"| 2 | Source |  | files (chooser, files) |  |",
		"## Skipped options",
		`- #3 a\|b:`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestShow_Rendered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteDescription(t, dir, "grep", grepDoc)

	h := newHarness(t, dir)
	if err := h.run("show", "grep"); err != nil {
		t.Fatalf("show error = %v", err)
	}
	out := h.stdout.String()
	if !strings.Contains(out, "Ignore case") {
		t.Errorf("rendered output lost the option label:\n%s", out)
	}
	if strings.Contains(out, "| # | Label |") {
		t.Errorf("table header should be rendered, not printed raw:\n%s", out)
	}
}

func TestDescribeMarkdown_NoOptions(t *testing.T) {
	t.Parallel()

	file := &discovery.DiscoveredFile{Name: "true", Path: "/etc/commando/true.json", Source: discovery.SourceDefault}
	md := describeMarkdown(file, &schema.Schema{Command: "true"}, nil)
	if !strings.Contains(md, "The form has no options.") {
		t.Errorf("describeMarkdown() = %q", md)
	}
	if !strings.Contains(md, "(default)") {
		t.Errorf("describeMarkdown() should name the source: %q", md)
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	h := newHarness(t, dir)
	if err := h.run("config", "show"); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	out := h.stdout.String()
	for _, want := range []string{"search_path: [", dir, `theme: "default"`, `level: "info"`} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}
