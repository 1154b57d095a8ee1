// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound is returned by [FS.Size] and [FS.ReadFile] if the requested
	// name does not exist in the file system.
	ErrNotFound = fs.ErrNotExist

	// ErrInvalidArgument is returned if an invalid argument is given.
	ErrInvalidArgument = errors.New("invalid argument")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError

func notFound(op, name string) error {
	return &PathError{
		Op:   op,
		Path: name,
		Err:  ErrNotFound,
	}
}
