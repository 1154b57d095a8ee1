// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"errors"
)

var (
	// ErrNotFound is returned if no file system in the search path holds a
	// loadable file for the requested name.
	ErrNotFound = errors.New("library not found")

	// ErrNativeFilesystem is returned if the first match for the requested
	// name lives on a native file system. Such files must be loaded by the
	// native loader.
	ErrNativeFilesystem = errors.New("library found on native file system")
)
