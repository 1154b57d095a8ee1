// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aibor/invfs/internal/loadsize"
	"github.com/aibor/invfs/internal/registry"
	"github.com/aibor/invfs/internal/vfs"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

const (
	// SourceExt is tried after the exact name.
	SourceExt = ".rb"
	// NativeExt is tried after [SourceExt].
	NativeExt = ".so"
)

// Match is a loadable file found by [Resolver.Find].
type Match struct {
	// FS is the file system the file was found in.
	FS vfs.FS
	// Path is the path of the file inside of FS.
	Path string
}

// LoadPath returns the path the file is loaded as. It is the label of the
// file system joined with the path.
func (m Match) LoadPath() string {
	return vfs.JoinLabel(m.FS.Label(), m.Path)
}

// String implements [fmt.Stringer].
func (m Match) String() string {
	return m.LoadPath()
}

// Resolver looks up library names in a [SearchPath].
type Resolver struct {
	// Registry maps raw search path entries. If nil, entries are used
	// unchanged.
	Registry *registry.Registry

	// SearchPath is the list of entries to search in order.
	SearchPath *SearchPath

	// MaxLoadSize is the size limit in bytes, files exceeding it are
	// skipped. It is used as is, callers apply [loadsize.Clamp] when
	// reading it from configuration. If 0, [loadsize.Default] is used.
	MaxLoadSize int64
}

func (r *Resolver) maxLoadSize() int64 {
	if r.MaxLoadSize == 0 {
		return loadsize.Default
	}

	return r.MaxLoadSize
}

func (r *Resolver) resolve(entry vfs.FS) (vfs.FS, error) {
	if r.Registry == nil {
		return entry, nil
	}

	return r.Registry.ResolveEntry(entry) //nolint:wrapcheck
}

// Candidates returns all file systems of the search path, in order, along
// with the name to look up in each.
// If relative is true or name is absolute, only entries whose key followed
// by "/" is a prefix of name are returned, along with the remainder of name.
// The key of a native entry is its native path, the key of any other entry
// is its label. Otherwise all file systems are returned along with name
// unchanged.
// Entries are mapped through the registry only after they passed the prefix
// check. Entries that can not be mapped to a file system are skipped.
func (r *Resolver) Candidates(name string, relative bool) iter.Seq2[vfs.FS, string] {
	prefixed := relative || filepath.IsAbs(name)

	return func(yield func(vfs.FS, string) bool) {
		for _, entry := range r.SearchPath.Entries() {
			sub := name

			if prefixed {
				var ok bool

				sub, ok = trimLabel(entryKey(entry), name)
				if !ok {
					continue
				}
			}

			fsys, err := r.resolve(entry)
			if err != nil {
				slog.Debug("Skipping search path entry",
					slog.String("entry", entry.Label()),
					slog.Any("error", err),
				)

				continue
			}

			if fsys == nil {
				continue
			}

			if !yield(fsys, sub) {
				return
			}
		}
	}
}

// entryKey returns the key relative and absolute names are matched against.
func entryKey(entry vfs.FS) string {
	if candidate, ok := entry.(vfs.Candidate); ok {
		return candidate.Path()
	}

	return entry.Label()
}

// trimLabel removes the label as directory prefix from name. It returns false
// if the label is empty, is no prefix of name or nothing remains.
func trimLabel(label, name string) (string, bool) {
	if label == "" {
		return "", false
	}

	if !strings.HasSuffix(label, "/") {
		label += "/"
	}

	sub, found := strings.CutPrefix(name, label)
	if !found || sub == "" {
		return "", false
	}

	return sub, true
}

// FindLib returns the name of the file to load for name in fsys.
//
// If relative is true, only name itself is considered. Otherwise name,
// name with [SourceExt] and name with [NativeExt] are tried in that order.
func FindLib(fsys vfs.FS, name string, relative bool) (string, bool) {
	if relative {
		if fsys.Exists(name) {
			return name, true
		}

		return "", false
	}

	for _, candidate := range []string{name, name + SourceExt, name + NativeExt} {
		if fsys.Exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// Find returns the first loadable file for name in the search path.
//
// Files exceeding the size limit are skipped and the search continues. If
// the first file found is on a native file system, the search stops with
// [ErrNativeFilesystem] and the returned [Match] holds the native file. If
// nothing is found, [ErrNotFound] is returned.
func (r *Resolver) Find(name string, relative bool) (Match, error) {
	for fsys, sub := range r.Candidates(name, relative) {
		lib, found := FindLib(fsys, sub, relative)
		if !found {
			continue
		}

		if vfs.IsNative(fsys) {
			match := Match{FS: fsys, Path: lib}
			return match, fmt.Errorf("%w: %s", ErrNativeFilesystem, match)
		}

		fits, err := r.WithinLimit(fsys, lib)
		if err != nil {
			return Match{}, err
		}

		if !fits {
			continue
		}

		return Match{FS: fsys, Path: lib}, nil
	}

	return Match{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// WithinLimit reports whether the file with the given name in fsys does not
// exceed the size limit. Files exceeding it are logged at debug level.
func (r *Resolver) WithinLimit(fsys vfs.FS, name string) (bool, error) {
	limit := r.maxLoadSize()

	size, err := fsys.Size(name)
	if err != nil {
		return false, fmt.Errorf("%s: %w", fsys.Label(), err)
	}

	if size > limit {
		slog.Debug("Skipping file exceeding load size limit",
			slog.String("path", vfs.JoinLabel(fsys.Label(), name)),
			slog.String("size", humanize.IBytes(uint64(size))),   //nolint:gosec
			slog.String("limit", humanize.IBytes(uint64(limit))), //nolint:gosec
		)

		return false, nil
	}

	return true, nil
}

// Warm maps all current search path entries through the registry, with at
// most limit entries being mapped concurrently. A limit of 0 or less means
// no limit.
//
// Archives are opened this way before the first lookup. Mapping errors are
// joined and returned. Warm stops early if ctx is canceled.
func (r *Resolver) Warm(ctx context.Context, limit int) error {
	group := errgroup.Group{}
	if limit > 0 {
		group.SetLimit(limit)
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	for _, entry := range r.SearchPath.Entries() {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			_, err := r.resolve(entry)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
