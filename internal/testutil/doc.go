// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail fast on
// setup errors: environment variables (MustSetenv, MustUnsetenv), the working
// directory (MustChdir), and description fixtures (WriteDescription).
package testutil
