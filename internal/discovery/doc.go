// SPDX-License-Identifier: MPL-2.0

// Package discovery locates description files.
//
// A description for command <name> is the file <name>.json in one of the
// search directories. An explicit --description path bypasses the search.
// The search path comes from the configuration (COMMANDO_PATH or
// search_path); when it is empty the default directories are used:
//
//	/usr/local/etc/commando
//	/etc/commando
//	<directory of the executable>/descriptions
//
// The first directory holding the file wins.
package discovery
