// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
)

// File is an open native file.
type File interface {
	io.Reader
	io.ReaderAt
	io.Closer

	Stat() (fs.FileInfo, error)
}

// Candidate is a native file that might be opened as [FS] by a handler.
type Candidate interface {
	// Path returns the native path of the file.
	Path() string

	// IsFile reports whether the path exists and is a regular file.
	IsFile() bool

	// Open opens the native file for reading.
	Open() (File, error)
}

// Key identifies a [Candidate] across file systems.
type Key struct {
	// Origin is the identity of the file system the candidate lives on. It
	// is nil for candidates that do not provide one.
	Origin any
	// Path is the native path of the candidate.
	Path string
}

// String implements [fmt.Stringer].
// Origins with equal addresses or equal types render the same.
func (k Key) String() string {
	switch {
	case k.Origin == nil:
		return k.Path
	case reflect.ValueOf(k.Origin).Kind() == reflect.Pointer:
		return fmt.Sprintf("%T@%p:%s", k.Origin, k.Origin, k.Path)
	default:
		return fmt.Sprintf("%T:%s", k.Origin, k.Path)
	}
}

// CacheKey returns the [Key] results for the given [Candidate] are cached
// under. Candidates providing an Origin method get it as [Key.Origin], so
// equal paths on different file systems get different keys.
func CacheKey(candidate Candidate) Key {
	key := Key{Path: candidate.Path()}

	if rooted, ok := candidate.(interface{ Origin() any }); ok {
		key.Origin = rooted.Origin()
	}

	return key
}

// ReadMagic fills buf with the first bytes of the given [Candidate].
//
// It reads exactly len(buf) bytes from offset 0 and nothing more. If the file
// is shorter than buf, [io.ErrUnexpectedEOF] is returned.
func ReadMagic(candidate Candidate, buf []byte) error {
	file, err := candidate.Open()
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	n, err := file.ReadAt(buf, 0)
	if n == len(buf) {
		return nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return fmt.Errorf("read magic: %w", err)
}
