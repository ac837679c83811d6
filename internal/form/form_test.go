// SPDX-License-Identifier: MPL-2.0

package form

import (
	"testing"

	"github.com/commando-cli/commando/internal/schema"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, doc string) *schema.Schema {
	t.Helper()

	s, _, err := schema.Parse([]byte(doc), "test.json")
	if err != nil {
		t.Fatalf("schema.Parse() error = %v", err)
	}
	return s
}

const grepDoc = `{"command":"grep","options":[{"name":"-i","type":"boolean"},{"title":"Pattern","type":"text"}]}`

func TestBuild_DispatchesByKind(t *testing.T) {
	t.Parallel()

	s := mustParse(t, `{"command": "x", "options": [
		{"title": "T", "type": "text"},
		{"title": "F", "type": "file"},
		{"title": "FS", "type": "files"},
		{"title": "D", "type": "directory"},
		{"title": "DS", "type": "directories"},
		{"title": "B", "type": "boolean"}
	]}`)

	r := &fakeRenderer{}
	f := Build(s, r)

	want := []string{
		"text:T",
		"chooser(file):F",
		"chooser(files):FS",
		"chooser(directory):D",
		"chooser(directories):DS",
		"checkbox:B",
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("renderer calls mismatch (-want +got):\n%s", diff)
	}
	if len(f.Options()) != 6 {
		t.Errorf("expected 6 options, got %d", len(f.Options()))
	}
}

func TestBuild_SeedsDefaults(t *testing.T) {
	t.Parallel()

	s := mustParse(t, `{"command": "x", "options": [
		{"type": "text", "default": "hello"},
		{"type": "file", "default": "/etc/hosts"},
		{"type": "boolean", "default": "true"},
		{"type": "boolean", "default": "yes"},
		{"type": "boolean"}
	]}`)

	r := &fakeRenderer{}
	Build(s, r)

	if r.texts[0].value != "hello" {
		t.Errorf("text seeded with %q", r.texts[0].value)
	}
	if r.texts[1].value != "/etc/hosts" {
		t.Errorf("chooser text seeded with %q", r.texts[1].value)
	}
	wantChecks := []bool{true, false, false}
	for i, want := range wantChecks {
		if r.checks[i].checked != want {
			t.Errorf("checkbox %d seeded %v, want %v", i, r.checks[i].checked, want)
		}
	}
}

func TestBuild_SkipsKindsWithoutPolicy(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{Command: "x", Options: []schema.Option{
		{Name: "-a", Kind: schema.KindBoolean},
		{Name: "-b", Kind: schema.Kind("slider")},
		{Name: "-c", Kind: schema.KindBoolean, Default: "true"},
	}}

	r := &fakeRenderer{}
	f := Build(s, r)

	if len(r.calls) != 2 {
		t.Fatalf("expected 2 controls, got %v", r.calls)
	}
	if got := f.Command(); got != "x -c" {
		t.Errorf("Command() = %q, want %q", got, "x -c")
	}
}

func TestReadBack_ReadsEachHandleOnce(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{}
	f := Build(mustParse(t, grepDoc), r)

	r.checks[0].toggle()
	r.texts[0].value = "foo"

	first := f.ReadBack()

	// Edits after read-back must not leak into the frozen snapshot.
	r.checks[0].toggle()
	r.texts[0].value = "bar"
	second := f.ReadBack()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ReadBack() not frozen (-first +second):\n%s", diff)
	}
	if r.checks[0].reads != 1 || r.texts[0].reads != 1 {
		t.Errorf("handles read %d/%d times, want 1/1", r.checks[0].reads, r.texts[0].reads)
	}

	want := []OptionState{{Active: true}, {Value: "foo", Active: true}}
	for i, e := range first {
		if e.State != want[i] {
			t.Errorf("entry %d state = %+v, want %+v", i, e.State, want[i])
		}
	}
}

func TestForm_EndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		checked bool
		text    string
		want    string
	}{
		{name: "checked with pattern", checked: true, text: "foo", want: `grep -i "foo"`},
		{name: "unchecked and empty", checked: false, text: "", want: "grep"},
		{name: "unchecked with pattern", checked: false, text: "foo", want: `grep "foo"`},
		{name: "checked and blank", checked: true, text: "   ", want: "grep -i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &fakeRenderer{}
			f := Build(mustParse(t, grepDoc), r)
			r.checks[0].checked = tt.checked
			r.texts[0].value = tt.text

			if got := f.Command(); got != tt.want {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForm_UnknownKindDoesNotBlockNeighbours(t *testing.T) {
	t.Parallel()

	s, diags, err := schema.Parse([]byte(`{"command": "cp", "options": [
		{"name": "-r", "type": "boolean", "default": "true"},
		{"name": "--mode", "type": "dial"},
		{"title": "Source", "type": "file"}
	]}`), "cp.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}

	r := &fakeRenderer{}
	f := Build(s, r)
	r.triggers[0].choose([]string{"/tmp/a b"}, false)

	if got := f.Command(); got != `cp -r "/tmp/a b"` {
		t.Errorf("Command() = %q", got)
	}
}

func TestForm_ChooserCancelKeepsValue(t *testing.T) {
	t.Parallel()

	s := mustParse(t, `{"command": "cat", "options": [
		{"type": "files", "default": "\"/etc/hosts\""}
	]}`)

	r := &fakeRenderer{}
	f := Build(s, r)

	before := r.texts[0].value
	r.triggers[0].choose([]string{"/ignored"}, true)
	r.triggers[0].choose(nil, false)
	if r.texts[0].value != before {
		t.Fatalf("value changed from %q to %q", before, r.texts[0].value)
	}

	r.triggers[0].choose([]string{"/a/b", "/c d"}, false)
	if got := f.Command(); got != `cat ""/a/b" "/c d""` {
		t.Errorf("Command() = %q", got)
	}
}
