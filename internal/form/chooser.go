// SPDX-License-Identifier: MPL-2.0

package form

import "strings"

// JoinPaths renders chooser output the way the option stores it. Single
// modes store the bare path; multi modes store every path double-quoted and
// space-joined, e.g. `"/a/b" "/c d"`.
func JoinPaths(mode ChooserMode, paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	if !mode.Multiple() {
		return paths[0]
	}
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = `"` + p + `"`
	}
	return strings.Join(quoted, " ")
}

// ApplyChoice returns the text a chooser leaves in its field. A dismissed
// chooser, or one confirmed with nothing selected, keeps current untouched.
func ApplyChoice(current string, mode ChooserMode, paths []string, dismissed bool) string {
	if dismissed || len(paths) == 0 {
		return current
	}
	return JoinPaths(mode, paths)
}
