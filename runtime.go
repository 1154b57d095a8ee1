// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package invfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aibor/invfs/internal/loader"
	"github.com/aibor/invfs/internal/loadsize"
	"github.com/aibor/invfs/internal/registry"
	"github.com/aibor/invfs/internal/resolver"
	"github.com/aibor/invfs/internal/tracker"
	"github.com/spf13/afero"
)

// ErrNoExecutor is returned by [Runtime.Require] and
// [Runtime.RequireRelative] if no [Executor] is configured.
var ErrNoExecutor = errors.New("no executor")

// Config is the configuration for a [Runtime].
type Config struct {
	// Fs is the native file system. If nil, the OS file system is used.
	Fs afero.Fs

	// SearchPath is the initial colon separated list of native search path
	// entries. More entries can be added to [Runtime.SearchPath] at any time.
	SearchPath string

	// MaxLoadSize is the load size limit in bytes. It is clamped into
	// [MinMaxLoadSize] and [MaxMaxLoadSize]. If 0, it is read from the
	// INVFS_MAX_LOADSIZE environment variable.
	MaxLoadSize int64

	// NoArchives disables the archive handlers. Only handlers registered
	// with [Runtime.Registry] are used then.
	NoArchives bool

	// Executor runs loaded code. It is required for loading but not for
	// lookups.
	Executor Executor

	// Native loads everything not found in a virtual file system. Optional.
	Native NativeLoader
}

// Runtime bundles the registry, search path, resolver, load tracker and
// loader of one embedding application.
type Runtime struct {
	Registry   *Registry
	SearchPath *SearchPath
	Resolver   *Resolver
	Tracker    *Tracker
	Loader     *Loader
}

// New creates a new [Runtime] with the given [Config].
func New(cfg Config) (*Runtime, error) {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	reg := registry.New()

	if !cfg.NoArchives {
		err := RegisterArchives(reg)
		if err != nil {
			return nil, err
		}
	}

	maxLoadSize := loadsize.Clamp(cfg.MaxLoadSize)
	if cfg.MaxLoadSize == 0 {
		var err error

		maxLoadSize, err = loadsize.FromEnv(os.LookupEnv)
		if err != nil {
			slog.Warn("Invalid load size limit, using default",
				slog.Any("error", err),
			)
		}
	}

	res := &resolver.Resolver{
		Registry:    reg,
		SearchPath:  resolver.ParseSearchPath(fsys, cfg.SearchPath),
		MaxLoadSize: maxLoadSize,
	}

	loaded := &tracker.Tracker{}

	return &Runtime{
		Registry:   reg,
		SearchPath: res.SearchPath,
		Resolver:   res,
		Tracker:    loaded,
		Loader: &loader.Loader{
			Resolver: res,
			Tracker:  loaded,
			Executor: cfg.Executor,
			Native:   cfg.Native,
		},
	}, nil
}

// Find returns the first loadable file for name in the search path. See
// [Resolver.Find].
func (r *Runtime) Find(name string, relative bool) (Match, error) {
	return r.Resolver.Find(name, relative) //nolint:wrapcheck
}

// Require loads the library with the given name. It returns false if it has
// been loaded already.
func (r *Runtime) Require(ctx context.Context, name string) (bool, error) {
	if r.Loader.Executor == nil {
		return false, fmt.Errorf("require %s: %w", name, ErrNoExecutor)
	}

	return r.Loader.Require(ctx, name) //nolint:wrapcheck
}

// RequireRelative loads the library with the given name relative to the
// caller file. It returns false if it has been loaded already.
func (r *Runtime) RequireRelative(ctx context.Context, name, caller string) (bool, error) {
	if r.Loader.Executor == nil {
		return false, fmt.Errorf("require %s: %w", name, ErrNoExecutor)
	}

	return r.Loader.RequireRelative(ctx, name, caller) //nolint:wrapcheck
}

// Close releases all opened archives.
func (r *Runtime) Close() error {
	return r.Registry.Close() //nolint:wrapcheck
}
