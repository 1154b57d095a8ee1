// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

var _ FS = (*Union)(nil)

// Union is an ordered list of native directories presented as a single file
// system.
//
// Lookups try each directory in order and use the first one that contains a
// regular file with the requested name.
type Union struct {
	fsys  afero.Fs
	dirs  []string
	label string
}

// NewUnion creates a new [Union] of the given directories on the given
// [afero.Fs]. If fsys is nil, the OS file system is used.
func NewUnion(fsys afero.Fs, dirs ...string) *Union {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	quoted := make([]string, len(dirs))
	for idx, dir := range dirs {
		quoted[idx] = "<" + dir + ">"
	}

	return &Union{
		fsys:  fsys,
		dirs:  slices.Clone(dirs),
		label: "union(" + strings.Join(quoted, ", ") + ")",
	}
}

// Dirs returns the directories in lookup order.
func (u *Union) Dirs() []string {
	return slices.Clone(u.dirs)
}

// Label implements [FS]. It lists the directories in lookup order.
func (u *Union) Label() string {
	return u.label
}

// String implements [fmt.Stringer].
func (u *Union) String() string {
	return u.label
}

// Exists implements [FS].
func (u *Union) Exists(name string) bool {
	_, _, found := u.find(name)
	return found
}

// Size implements [FS].
func (u *Union) Size(name string) (int64, error) {
	_, info, found := u.find(name)
	if !found {
		return 0, notFound("size", name)
	}

	return info.Size(), nil
}

// ReadFile implements [FS].
func (u *Union) ReadFile(name string) ([]byte, error) {
	path, _, found := u.find(name)
	if !found {
		return nil, notFound("read", name)
	}

	return readFile(u.fsys, path, name)
}

func (u *Union) find(name string) (string, fs.FileInfo, bool) {
	for _, dir := range u.dirs {
		path := filepath.Join(dir, name)

		info, ok := regularFile(u.fsys, path)
		if ok {
			return path, info, true
		}
	}

	return "", nil, false
}
