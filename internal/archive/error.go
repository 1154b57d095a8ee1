// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound is returned if a name does not exist in the archive.
	ErrNotFound = fs.ErrNotExist

	// ErrSymlinkTooDeep is returned if symbolic links inside of an archive
	// are nested too deep or form a loop.
	ErrSymlinkTooDeep = errors.New("symbolic links nested too deep")

	// ErrUnsupportedCompression is returned for an unknown [Compression].
	ErrUnsupportedCompression = errors.New("unsupported compression")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
