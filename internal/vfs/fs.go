// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import "strings"

// FS is the minimal capability set every virtual file system provides.
//
// Names are relative to the root of the file system. Implementations must
// not change their [FS.Label] after construction, since it is used as cache
// and deduplication key.
type FS interface {
	// Exists reports whether name is a readable file. It must not fail for
	// non-existing names.
	Exists(name string) bool

	// Size returns the size in bytes of the file with the given name. It
	// returns a [PathError] wrapping [ErrNotFound] if it does not exist.
	Size(name string) (int64, error)

	// ReadFile returns the complete content of the file with the given name.
	// It returns a [PathError] wrapping [ErrNotFound] if it does not exist.
	ReadFile(name string) ([]byte, error)

	// Label returns a stable identifier for the file system.
	Label() string
}

// NativeFS is implemented by file systems that may wrap the native file
// system directly.
type NativeFS interface {
	FS

	// IsNative reports whether the file system is the plain native file
	// system and not a virtual one layered on top of it.
	IsNative() bool
}

// IsNative reports whether the given [FS] is the plain native file system.
//
// It is false for all file systems that do not implement [NativeFS].
func IsNative(fsys FS) bool {
	native, ok := fsys.(NativeFS)

	return ok && native.IsNative()
}

// JoinLabel joins the label of a file system and a name inside of it with
// exactly one "/" in between.
//
// The result is the path under which files loaded from a file system are
// known to the loader.
func JoinLabel(label, name string) string {
	if label == "" {
		return name
	}

	return strings.TrimSuffix(label, "/") + "/" + strings.TrimPrefix(name, "/")
}
