// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"io/fs"
	"path/filepath"
	"reflect"

	"github.com/spf13/afero"
)

var (
	_ NativeFS  = (*NativePath)(nil)
	_ Candidate = (*NativePath)(nil)
)

// NativePath is a single path on the native file system.
//
// As a search path entry it is either a directory that is searched natively
// or a file that a handler may open as virtual file system, like an archive.
type NativePath struct {
	fsys   afero.Fs
	origin any
	path   string
}

// NewNativePath creates a new [NativePath] for the given path on the given
// [afero.Fs]. If fsys is nil, the OS file system is used.
func NewNativePath(fsys afero.Fs, path string) *NativePath {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &NativePath{
		fsys:   fsys,
		origin: origin(fsys),
		path:   filepath.Clean(path),
	}
}

// origin identifies the given file system instance. It is the instance
// itself if it is a pointer, otherwise its type. All OS file systems share
// one origin. The result is always comparable.
func origin(fsys afero.Fs) any {
	if _, ok := fsys.(*afero.OsFs); ok {
		return osOrigin{}
	}

	if reflect.ValueOf(fsys).Kind() == reflect.Pointer {
		return fsys
	}

	return reflect.TypeOf(fsys)
}

type osOrigin struct{}

// Path returns the cleaned native path.
func (n *NativePath) Path() string {
	return n.path
}

// Origin returns the identity of the [afero.Fs] the path lives on. The
// value is comparable.
func (n *NativePath) Origin() any {
	return n.origin
}

// Label implements [FS]. It is the native path itself.
func (n *NativePath) Label() string {
	return n.path
}

// String implements [fmt.Stringer].
func (n *NativePath) String() string {
	return n.path
}

// IsNative implements [NativeFS]. It is always true.
func (*NativePath) IsNative() bool {
	return true
}

// IsFile implements [Candidate].
func (n *NativePath) IsFile() bool {
	_, ok := regularFile(n.fsys, n.path)
	return ok
}

// Open implements [Candidate].
func (n *NativePath) Open() (File, error) {
	file, err := n.fsys.Open(n.path)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return file, nil
}

// Exists implements [FS]. It is true if name joined to the path is a regular
// file.
func (n *NativePath) Exists(name string) bool {
	_, ok := regularFile(n.fsys, n.join(name))
	return ok
}

// Size implements [FS].
func (n *NativePath) Size(name string) (int64, error) {
	info, ok := regularFile(n.fsys, n.join(name))
	if !ok {
		return 0, notFound("size", name)
	}

	return info.Size(), nil
}

// ReadFile implements [FS].
func (n *NativePath) ReadFile(name string) ([]byte, error) {
	path := n.join(name)

	if _, ok := regularFile(n.fsys, path); !ok {
		return nil, notFound("read", name)
	}

	return readFile(n.fsys, path, name)
}

func (n *NativePath) join(name string) string {
	return filepath.Join(n.path, name)
}

func regularFile(fsys afero.Fs, path string) (fs.FileInfo, bool) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, false
	}

	return info, info.Mode().IsRegular()
}

func readFile(fsys afero.Fs, path, name string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &PathError{
			Op:   "read",
			Path: name,
			Err:  err,
		}
	}

	return data, nil
}
