// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/aibor/invfs/internal/vfs"
	"github.com/klauspost/compress/zip"
)

var (
	_ vfs.FS    = (*Zip)(nil)
	_ io.Closer = (*Zip)(nil)
)

// Zip is a virtual file system on top of a zip archive.
//
// The archive file stays open for random access to its members until
// [Zip.Close] is called.
type Zip struct {
	path    string
	file    vfs.File
	members map[string]*zip.File
}

// OpenZip opens the given [vfs.Candidate] as zip archive.
func OpenZip(candidate vfs.Candidate) (*Zip, error) {
	file, err := candidate.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}

	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("read zip directory: %w", err)
	}

	members := make(map[string]*zip.File, len(reader.File))

	for _, member := range reader.File {
		if member.Mode().IsRegular() {
			members[clean(member.Name)] = member
		}
	}

	archive := &Zip{
		path:    candidate.Path(),
		file:    file,
		members: members,
	}

	return archive, nil
}

// Label implements [vfs.FS]. It is the native path of the archive file.
func (z *Zip) Label() string {
	return z.path
}

// String implements [fmt.Stringer].
func (z *Zip) String() string {
	return z.path + " (zip)"
}

// Names returns the names of all regular files in the archive, sorted.
func (z *Zip) Names() []string {
	return slices.Sorted(maps.Keys(z.members))
}

// Exists implements [vfs.FS].
func (z *Zip) Exists(name string) bool {
	_, exists := z.members[clean(name)]
	return exists
}

// Size implements [vfs.FS]. It is the uncompressed size of the member.
func (z *Zip) Size(name string) (int64, error) {
	member, exists := z.members[clean(name)]
	if !exists {
		return 0, &PathError{Op: "size", Path: name, Err: ErrNotFound}
	}

	return int64(member.UncompressedSize64), nil //nolint:gosec
}

// ReadFile implements [vfs.FS].
func (z *Zip) ReadFile(name string) ([]byte, error) {
	member, exists := z.members[clean(name)]
	if !exists {
		return nil, &PathError{Op: "read", Path: name, Err: ErrNotFound}
	}

	reader, err := member.Open()
	if err != nil {
		return nil, &PathError{Op: "read", Path: name, Err: err}
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &PathError{Op: "read", Path: name, Err: err}
	}

	return data, nil
}

// Close closes the underlying archive file.
func (z *Zip) Close() error {
	return z.file.Close() //nolint:wrapcheck
}
