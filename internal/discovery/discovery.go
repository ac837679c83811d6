// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/commando-cli/commando/internal/config"
	"github.com/commando-cli/commando/internal/issue"
	"github.com/commando-cli/commando/internal/schema"
)

const (
	// SourceOverride indicates the file was given with --description.
	SourceOverride Source = iota
	// SourceSearchPath indicates the file was found through COMMANDO_PATH or search_path.
	SourceSearchPath
	// SourceDefault indicates the file was found in a default directory.
	SourceDefault

	// BinaryName is the name under which the command name is read from the
	// arguments rather than from the invocation name.
	BinaryName = "commando"

	descriptionsDirName = "descriptions"
)

var (
	// ErrNotFound is returned when no description exists for a command.
	ErrNotFound = errors.New("couldn't find a description")
	// ErrMissingName is returned when neither a command name nor an override was given.
	ErrMissingName = errors.New("missing command name or --description")
)

type (
	// Source represents where a description was found.
	Source int

	// DiscoveredFile is a located description.
	DiscoveredFile struct {
		// Name is the command name the description serves.
		Name string
		// Path is the path of the description file.
		Path string
		// Source indicates how the file was found.
		Source Source
	}

	// Locator resolves command names to description files.
	Locator struct {
		override    string
		searchPath  []string
		defaultDirs []string
	}

	// Option configures a Locator.
	Option func(*Locator)
)

// WithOverride makes Locate return path regardless of the command name.
func WithOverride(path string) Option {
	return func(l *Locator) { l.override = path }
}

// WithDefaultDirs replaces the built-in default directories.
func WithDefaultDirs(dirs ...string) Option {
	return func(l *Locator) { l.defaultDirs = dirs }
}

// New creates a Locator using the configured search path.
func New(cfg *config.Config, opts ...Option) *Locator {
	l := &Locator{defaultDirs: DefaultDirs()}
	if cfg != nil {
		l.searchPath = cfg.SearchDirs()
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultDirs returns the directories searched when no search path is configured.
func DefaultDirs() []string {
	dirs := []string{"/usr/local/etc/commando", "/etc/commando"}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), descriptionsDirName))
	}
	return dirs
}

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "--description"
	case SourceSearchPath:
		return "search path"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Dirs returns the effective search directories in priority order and the
// source they come from.
func (l *Locator) Dirs() ([]string, Source) {
	if len(l.searchPath) > 0 {
		return l.searchPath, SourceSearchPath
	}
	return l.defaultDirs, SourceDefault
}

// Locate returns the description for name. An override, when set, wins over
// the name; it must point to an existing file.
func (l *Locator) Locate(name string) (*DiscoveredFile, error) {
	if l.override != "" {
		if !isFile(l.override) {
			return nil, issue.NewErrorContext().
				WithOperation("locate description").
				WithResource(l.override).
				WithSuggestion("Check the path given with --description").
				Wrap(fmt.Errorf("%w at %s", ErrNotFound, l.override)).
				BuildError()
		}
		return &DiscoveredFile{Name: schema.Name(l.override), Path: l.override, Source: SourceOverride}, nil
	}

	if name == "" {
		return nil, issue.NewErrorContext().
			WithOperation("locate description").
			WithSuggestion("Pass the command name, e.g. 'commando grep'").
			WithSuggestion("Or pass a file with --description").
			WithIssue(issue.MissingCommandNameId).
			Wrap(ErrMissingName).
			BuildError()
	}

	dirs, source := l.Dirs()
	if !strings.ContainsAny(name, `/\`) {
		for _, dir := range dirs {
			path := filepath.Join(dir, name+schema.FileExt)
			if isFile(path) {
				return &DiscoveredFile{Name: name, Path: path, Source: source}, nil
			}
		}
	}

	return nil, issue.NewErrorContext().
		WithOperation("locate description").
		WithResource(name).
		WithSuggestion(fmt.Sprintf("Add %s%s to one of: %s", name, schema.FileExt, strings.Join(dirs, string(os.PathListSeparator)))).
		WithSuggestion("Run 'commando list' to see the available descriptions").
		WithIssue(issue.DescriptionNotFoundId).
		Wrap(fmt.Errorf("%w for command %q", ErrNotFound, name)).
		BuildError()
}

// CommandName returns the command whose form should be shown: the first
// argument when there is one. Without arguments, a binary running under
// another name (a link such as grep-form -> commando) uses that name.
func CommandName(argv0 string, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	base := filepath.Base(argv0)
	if runtime.GOOS == "windows" {
		base = strings.TrimSuffix(base, ".exe")
	}
	if argv0 != "" && base != BinaryName {
		return base
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
