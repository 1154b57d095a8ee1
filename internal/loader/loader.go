// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/aibor/invfs/internal/resolver"
	"github.com/aibor/invfs/internal/tracker"
	"github.com/dustin/go-humanize"
)

// Executor runs loaded code.
type Executor interface {
	// Eval evaluates source code. The load path is used as file name of the
	// code, for example in stack traces.
	Eval(ctx context.Context, code []byte, loadPath string) error

	// LoadNative loads a native extension with the given base name. The code
	// usually needs to be staged as native file first, see [Stage]. It
	// returns the feature the host recorded for the staged file, if any.
	LoadNative(ctx context.Context, name string, code []byte) (string, error)
}

// NativeLoader loads files from native file systems.
type NativeLoader interface {
	Require(ctx context.Context, name string) (bool, error)
	RequireRelative(ctx context.Context, name, caller string) (bool, error)
}

// Loader loads library files from virtual file systems.
//
// All fields must be set, except for Native. Without Native, names that are
// not found in any virtual file system fail with [LoadError].
type Loader struct {
	Resolver *resolver.Resolver
	Tracker  *tracker.Tracker
	Executor Executor
	Native   NativeLoader
}

// Require loads the library with the given name, if not loaded already.
//
// The name is looked up in the search path with [resolver.Resolver.Find].
// If it is not found in a virtual file system, it is passed to the
// [NativeLoader]. It returns false if the library has been loaded already.
func (l *Loader) Require(ctx context.Context, name string) (bool, error) {
	match, err := l.Resolver.Find(filepath.Clean(name), false)
	if isNativeFallback(err) {
		return l.requireNative(ctx, name)
	} else if err != nil {
		return false, fmt.Errorf("find %s: %w", name, err)
	}

	return l.load(ctx, match)
}

// RequireRelative loads the library with the given name relative to the
// directory of the caller file, if not loaded already.
//
// If the caller file lives in a virtual file system, the name is looked up
// in the same file system only. Otherwise both are passed to the
// [NativeLoader]. Absolute names are loaded with [Loader.Require].
// The file found is subject to the same size limit as with [Loader.Require].
// If it exceeds the limit, a [LoadError] wrapping [ErrSizeExceeded] is
// returned, since there is no other file system to continue the search in.
func (l *Loader) RequireRelative(ctx context.Context, name, caller string) (bool, error) {
	if filepath.IsAbs(name) {
		return l.Require(ctx, name)
	}

	callerMatch, err := l.Resolver.Find(caller, true)
	if isNativeFallback(err) {
		return l.requireRelativeNative(ctx, name, caller)
	} else if err != nil {
		return false, fmt.Errorf("find caller %s: %w", caller, err)
	}

	sub := path.Join(path.Dir(callerMatch.Path), name)

	lib, found := resolver.FindLib(callerMatch.FS, sub, false)
	if !found {
		return false, &LoadError{Name: name}
	}

	fits, err := l.Resolver.WithinLimit(callerMatch.FS, lib)
	if err != nil {
		return false, fmt.Errorf("find %s: %w", name, err)
	}

	if !fits {
		return false, &LoadError{Name: name, Err: ErrSizeExceeded}
	}

	return l.load(ctx, resolver.Match{FS: callerMatch.FS, Path: lib})
}

func (l *Loader) requireNative(ctx context.Context, name string) (bool, error) {
	if l.Native == nil {
		return false, &LoadError{Name: name, Err: ErrNoNativeLoader}
	}

	return l.Native.Require(ctx, name) //nolint:wrapcheck
}

func (l *Loader) requireRelativeNative(ctx context.Context, name, caller string) (bool, error) {
	if l.Native == nil {
		return false, &LoadError{Name: name, Err: ErrNoNativeLoader}
	}

	return l.Native.RequireRelative(ctx, name, caller) //nolint:wrapcheck
}

func (l *Loader) load(ctx context.Context, match resolver.Match) (bool, error) {
	label := match.FS.Label()
	if l.Tracker.Loaded(label, match.Path) {
		return false, nil
	}

	code, err := match.FS.ReadFile(match.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", match, err)
	}

	loadPath := match.LoadPath()

	if path.Ext(match.Path) == resolver.NativeExt {
		staged, err := l.Executor.LoadNative(ctx, path.Base(match.Path), code)
		if err != nil {
			return false, fmt.Errorf("load native %s: %w", loadPath, err)
		}

		// The staged file is a temporary copy, only the virtual path counts.
		if staged != "" {
			l.Tracker.Remove(staged)
		}
	} else {
		err := l.Executor.Eval(ctx, code, loadPath)
		if err != nil {
			return false, fmt.Errorf("eval %s: %w", loadPath, err)
		}
	}

	l.Tracker.MarkLoaded(label, match.Path)

	slog.Debug("Loaded library",
		slog.String("path", loadPath),
		slog.String("size", humanize.IBytes(uint64(len(code)))),
	)

	return true, nil
}

func isNativeFallback(err error) bool {
	return errors.Is(err, resolver.ErrNotFound) ||
		errors.Is(err, resolver.ErrNativeFilesystem)
}
