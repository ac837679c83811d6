// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/commando/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/commando/config.cue on macOS, %APPDATA%\commando\config.cue
// on Windows), falling back to ./config.cue. Every key is optional. The file is validated
// against the embedded config_schema.cue before it reaches Viper.
//
// The COMMANDO_PATH environment variable is bound through Viper and replaces the
// configured search path when set.
package config
