// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ThemeDefault uses the huh base theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidTheme is returned when a Theme value is not recognized.
	ErrInvalidTheme = errors.New("invalid theme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidSearchDir is returned when a search_path entry is whitespace-only.
	ErrInvalidSearchDir = errors.New("invalid search directory")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Theme names the form color theme.
	Theme string

	// InvalidThemeError is returned when a Theme value is not recognized.
	// It wraps ErrInvalidTheme for errors.Is() compatibility.
	InvalidThemeError struct {
		Value Theme
	}

	// LogLevel is the minimum level written by the logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// SearchDir is one directory of the description search path.
	SearchDir string

	// InvalidSearchDirError is returned when a SearchDir is empty or whitespace-only.
	InvalidSearchDirError struct {
		Value SearchDir
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// SearchPath replaces the default description directories when non-empty.
		SearchPath []SearchDir `json:"search_path" mapstructure:"search_path"`
		// UI configures the form renderers.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures the logger.
		Log LogConfig `json:"log" mapstructure:"log"`

		// source is the file the configuration was read from, if any.
		source string
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Theme selects the form colors.
		Theme Theme `json:"theme" mapstructure:"theme"`
		// Accessible forces the line-oriented prompt renderer.
		Accessible bool `json:"accessible" mapstructure:"accessible"`
		// Verbose enables debug logging and error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures the logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
		// File enables a rotating log file in addition to stderr.
		File string `json:"file" mapstructure:"file"`
	}
)

// Source returns the path of the file the configuration was loaded from,
// or an empty string when only defaults and the environment were used.
func (c *Config) Source() string { return c.source }

// SearchDirs returns the search path as plain strings.
func (c *Config) SearchDirs() []string {
	dirs := make([]string, len(c.SearchPath))
	for i, d := range c.SearchPath {
		dirs[i] = string(d)
	}
	return dirs
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, d := range c.SearchPath {
		if valid, fieldErrs := d.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.UI.Theme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the Theme.
func (t Theme) String() string { return string(t) }

// IsValid returns whether the Theme is one of the defined themes,
// and a list of validation errors if it is not.
func (t Theme) IsValid() (bool, []error) {
	switch t {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return true, nil
	default:
		return false, []error{&InvalidThemeError{Value: t}}
	}
}

// Error implements the error interface for InvalidThemeError.
func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q (valid: default, charm, dracula, catppuccin, base16)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidThemeError) Unwrap() error { return ErrInvalidTheme }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the SearchDir.
func (d SearchDir) String() string { return string(d) }

// IsValid returns whether the SearchDir is usable. It must not be whitespace-only.
func (d SearchDir) IsValid() (bool, []error) {
	if strings.TrimSpace(string(d)) == "" {
		return false, []error{&InvalidSearchDirError{Value: d}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSearchDirError.
func (e *InvalidSearchDirError) Error() string {
	return fmt.Sprintf("invalid search directory %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidSearchDir for errors.Is() compatibility.
func (e *InvalidSearchDirError) Unwrap() error { return ErrInvalidSearchDir }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SearchPath: []SearchDir{},
		UI: UIConfig{
			Theme:      ThemeDefault,
			Accessible: false,
			Verbose:    false,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
			File:  "",
		},
	}
}
