// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/aibor/invfs/internal/vfs"
	"golang.org/x/sync/singleflight"
)

// mapping is the memoized result for a single entry. A zero mapping means
// no handler recognized the entry.
type mapping struct {
	fsys vfs.FS
	err  error
}

// Registry is an ordered list of [Handler]s along with the cache of already
// mapped search path entries.
//
// Create it once with [New], register handlers with [Registry.Register] and
// pass it to everything that resolves search path entries. Use
// [Registry.Close] to release opened file systems.
type Registry struct {
	mu       sync.Mutex
	handlers []Handler
	mapped   map[vfs.Key]mapping
	inflight singleflight.Group
}

// New creates a new empty [Registry].
func New() *Registry {
	return &Registry{
		mapped: make(map[vfs.Key]mapping),
	}
}

// Register appends the given [Handler]. Handlers are probed in registration
// order.
//
// It returns [ErrInvalidHandler] if the handler is nil or incomplete.
func (r *Registry) Register(handler Handler) error {
	err := validateHandler(handler)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = append(r.handlers, handler)

	return nil
}

// Handlers returns the registered handlers in probe order.
func (r *Registry) Handlers() []Handler {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.handlers)
}

// ResolveEntry maps the given search path entry to a [vfs.FS].
//
// Entries that are not native files, like directories or already virtual
// file systems, are returned unchanged. Native files are offered to the
// registered handlers and the file system opened by the first one that
// recognizes the file is returned. If no handler recognizes it, the returned
// [vfs.FS] is nil. If the handler fails to open it, an [OpenError] is
// returned. The result is cached per [vfs.CacheKey], so for each file
// handlers are probed only once, even if called concurrently. Files with
// equal paths on different file systems are cached separately.
func (r *Registry) ResolveEntry(entry vfs.FS) (vfs.FS, error) {
	candidate, ok := entry.(vfs.Candidate)
	if !ok {
		return entry, nil
	}

	key := vfs.CacheKey(candidate)

	if cached, exists := r.lookup(key); exists {
		return cached.fsys, cached.err
	}

	if !candidate.IsFile() {
		return entry, nil
	}

	result, _, _ := r.inflight.Do(key.String(), func() (any, error) {
		if cached, exists := r.lookup(key); exists {
			return cached, nil
		}

		mapped := r.probe(candidate)
		r.store(key, mapped)

		return mapped, nil
	})

	mapped, _ := result.(mapping)

	return mapped.fsys, mapped.err
}

// Close closes all cached file systems that implement [io.Closer] and
// clears the cache.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error

	for _, mapped := range r.mapped {
		closer, ok := mapped.fsys.(io.Closer)
		if !ok {
			continue
		}

		err := closer.Close()
		if err != nil {
			errs = append(errs, err)
		}
	}

	clear(r.mapped)

	return errors.Join(errs...)
}

func (r *Registry) lookup(key vfs.Key) (mapping, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cached, exists := r.mapped[key]

	return cached, exists
}

func (r *Registry) store(key vfs.Key, mapped mapping) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mapped[key] = mapped
}

func (r *Registry) probe(candidate vfs.Candidate) mapping {
	path := candidate.Path()

	for _, handler := range r.Handlers() {
		if !handler.Probe(candidate) {
			continue
		}

		name := handlerName(handler)

		fsys, err := handler.Open(candidate)
		if err != nil {
			slog.Debug("Handler failed to open search path entry",
				slog.String("path", path),
				slog.String("handler", name),
				slog.Any("error", err),
			)

			return mapping{
				err: &OpenError{
					Path:    path,
					Handler: name,
					Err:     err,
				},
			}
		}

		if fsys == nil {
			return mapping{}
		}

		slog.Debug("Mapped search path entry",
			slog.String("path", path),
			slog.String("handler", name),
			slog.String("label", fsys.Label()),
		)

		return mapping{fsys: fsys}
	}

	slog.Debug("No handler for search path entry", slog.String("path", path))

	return mapping{}
}
