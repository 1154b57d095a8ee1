// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package invfs

import (
	"github.com/aibor/invfs/internal/archive"
	"github.com/aibor/invfs/internal/loader"
	"github.com/aibor/invfs/internal/loadsize"
	"github.com/aibor/invfs/internal/registry"
	"github.com/aibor/invfs/internal/resolver"
	"github.com/aibor/invfs/internal/tracker"
	"github.com/aibor/invfs/internal/vfs"
	"github.com/spf13/afero"
)

// File system contract and backends.
type (
	// FS is the capability set every virtual file system provides.
	FS = vfs.FS
	// NativeFS is implemented by file systems that may be the plain native
	// file system.
	NativeFS = vfs.NativeFS
	// Candidate is a native file a [Handler] may open as [FS].
	Candidate = vfs.Candidate
	// File is an open native file.
	File = vfs.File
	// PathError records an error and the operation and path that caused it.
	PathError = vfs.PathError

	NativePath = vfs.NativePath
	Union      = vfs.Union
	StringMap  = vfs.StringMap
)

// Handlers and resolution.
type (
	Handler      = registry.Handler
	HandlerFuncs = registry.HandlerFuncs
	Registry     = registry.Registry
	OpenError    = registry.OpenError
	SearchPath   = resolver.SearchPath
	Resolver     = resolver.Resolver
	Match        = resolver.Match
)

// Loading.
type (
	Tracker      = tracker.Tracker
	Loader       = loader.Loader
	Executor     = loader.Executor
	NativeLoader = loader.NativeLoader
	LoadError    = loader.LoadError
)

var (
	// ErrFileNotFound is wrapped by [FS] errors for names that do not exist.
	ErrFileNotFound = vfs.ErrNotFound

	// ErrInvalidArgument is returned for invalid arguments, like an odd
	// number of [NewStringMap] arguments.
	ErrInvalidArgument = vfs.ErrInvalidArgument

	// ErrInvalidHandler is returned by [Registry.Register] for incomplete
	// handlers.
	ErrInvalidHandler = registry.ErrInvalidHandler

	// ErrLibraryNotFound is returned if a library name is not found in any
	// virtual file system of the search path.
	ErrLibraryNotFound = resolver.ErrNotFound

	// ErrNativeFilesystem is returned if a library name is found on the
	// native file system first.
	ErrNativeFilesystem = resolver.ErrNativeFilesystem

	// ErrSizeExceeded is returned if a file to load relative to another one
	// exceeds the load size limit.
	ErrSizeExceeded = loader.ErrSizeExceeded

	// ErrNoNativeLoader is returned if a name must be loaded natively but no
	// [NativeLoader] is configured.
	ErrNoNativeLoader = loader.ErrNoNativeLoader
)

// Load size limits in bytes.
const (
	DefaultMaxLoadSize = loadsize.Default
	MinMaxLoadSize     = loadsize.Min
	MaxMaxLoadSize     = loadsize.Max
)

// NewRegistry returns a new empty [Registry]. Use [RegisterArchives] to add
// the archive handlers.
func NewRegistry() *Registry {
	return registry.New()
}

// RegisterArchives adds handlers for zip archives and cpio archives, plain
// or compressed with gzip, zstd or lz4, to the given [Registry].
func RegisterArchives(reg *Registry) error {
	return archive.Register(reg) //nolint:wrapcheck
}

// NewNativePath returns a search path entry for the given native path. If
// fsys is nil, the OS file system is used.
func NewNativePath(fsys afero.Fs, path string) *NativePath {
	return vfs.NewNativePath(fsys, path)
}

// NewUnion returns a [Union] of the given native directories. If fsys is
// nil, the OS file system is used.
func NewUnion(fsys afero.Fs, dirs ...string) *Union {
	return vfs.NewUnion(fsys, dirs...)
}

// NewStringMap returns a [StringMap] from a flat list of name and content
// pairs.
func NewStringMap(pairs ...string) (*StringMap, error) {
	return vfs.NewStringMap(pairs...) //nolint:wrapcheck
}

// ParseSearchPath returns a [SearchPath] of native entries from the given
// colon separated list.
func ParseSearchPath(fsys afero.Fs, list string) *SearchPath {
	return resolver.ParseSearchPath(fsys, list)
}

// ParseLoadSize parses a size like "512k" or "4MiB" into bytes.
func ParseLoadSize(s string) (int64, error) {
	return loadsize.Parse(s) //nolint:wrapcheck
}

// Stage writes native code into a new private temporary directory. It
// returns the path of the written file and a function removing it again.
func Stage(fsys afero.Fs, name string, code []byte) (string, func() error, error) {
	return loader.Stage(fsys, name, code) //nolint:wrapcheck
}

// IsNative reports whether the given [FS] is the plain native file system.
func IsNative(fsys FS) bool {
	return vfs.IsNative(fsys)
}
