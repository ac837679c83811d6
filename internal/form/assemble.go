// SPDX-License-Identifier: MPL-2.0

package form

import "strings"

// Assemble appends the emitted options to base, strictly in entry order.
//
// A boolean contributes " name" when active. Any other kind contributes
// ` name "value"` (or ` "value"` without a name) when active and its value
// is not blank. Values are wrapped in double quotes as-is: a value that
// itself contains a double quote yields an unbalanced command line.
func Assemble(base string, entries []Entry) string {
	var b strings.Builder
	b.WriteString(base)
	for _, e := range entries {
		p, ok := policyFor(e.Option.Kind)
		if !ok || !p.emits(e.State) {
			continue
		}
		p.write(&b, e.Option, e.State)
	}
	return b.String()
}
