// SPDX-License-Identifier: MPL-2.0

package form

import "testing"

func TestJoinPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mode  ChooserMode
		paths []string
		want  string
	}{
		{name: "single file", mode: ChooserFile, paths: []string{"/etc/hosts"}, want: "/etc/hosts"},
		{name: "single dir with space", mode: ChooserDirectory, paths: []string{"/c d"}, want: "/c d"},
		{name: "single keeps first", mode: ChooserFile, paths: []string{"/a", "/b"}, want: "/a"},
		{name: "multi files", mode: ChooserFiles, paths: []string{"/a/b", "/c d"}, want: `"/a/b" "/c d"`},
		{name: "multi dirs one path", mode: ChooserDirectories, paths: []string{"/x"}, want: `"/x"`},
		{name: "nothing", mode: ChooserFiles, paths: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := JoinPaths(tt.mode, tt.paths); got != tt.want {
				t.Errorf("JoinPaths() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyChoice(t *testing.T) {
	t.Parallel()

	const current = "  keep \"me\" "

	if got := ApplyChoice(current, ChooserFiles, []string{"/a"}, true); got != current {
		t.Errorf("dismissed chooser changed value to %q", got)
	}
	if got := ApplyChoice(current, ChooserFile, nil, false); got != current {
		t.Errorf("empty selection changed value to %q", got)
	}
	if got := ApplyChoice(current, ChooserFile, []string{"/new"}, false); got != "/new" {
		t.Errorf("confirmed selection = %q, want /new", got)
	}
	if got := ApplyChoice("", ChooserDirectories, []string{"/a", "/b"}, false); got != `"/a" "/b"` {
		t.Errorf("multi selection = %q", got)
	}
}
