// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/commando-cli/commando/internal/schema"

	"github.com/bmatcuk/doublestar/v4"
)

// List enumerates the descriptions visible through the search path, sorted
// by name. A name found in several directories is reported once, from the
// first directory; later copies produce a shadowing diagnostic. A non-empty
// pattern filters names with doublestar glob syntax ("g*", "{grep,tar}").
func (l *Locator) List(pattern string) ([]*DiscoveredFile, []Diagnostic, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	dirs, source := l.Dirs()
	seen := make(map[string]string)
	var (
		files []*DiscoveredFile
		diags []Diagnostic
	)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeSearchDirUnreadable,
					Message:  fmt.Sprintf("cannot list search directory %s", dir),
					Path:     dir,
					Cause:    err,
				})
			}
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), schema.FileExt) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			name := schema.Name(path)
			if pattern != "" && !doublestar.MatchUnvalidated(pattern, name) {
				continue
			}
			if first, ok := seen[name]; ok {
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeDescriptionShadowed,
					Message:  fmt.Sprintf("%s is shadowed by %s", path, first),
					Path:     path,
				})
				continue
			}
			seen[name] = path
			files = append(files, &DiscoveredFile{Name: name, Path: path, Source: source})
		}
	}

	slices.SortStableFunc(files, func(a, b *DiscoveredFile) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return files, diags, nil
}
