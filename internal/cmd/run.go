// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/invfs"
	"github.com/aibor/invfs/internal/exitcode"
	"github.com/aibor/invfs/internal/resolver"
	"github.com/aibor/invfs/internal/vfs"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const localConfigFile = ".invfs-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type lookup struct {
	name  string
	match resolver.Match
	err   error
}

func (l *lookup) found() bool {
	return l.err == nil || errors.Is(l.err, resolver.ErrNativeFilesystem)
}

func newFlagsFromArgs(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func appendSearchPath(searchPath *resolver.SearchPath, fsys afero.Fs, flags *flags) {
	for _, path := range flags.searchPath {
		searchPath.Append(vfs.NewNativePath(fsys, path))
	}

	for _, dirs := range flags.unions {
		searchPath.Append(vfs.NewUnion(fsys, dirs...))
	}
}

func resolveAll(
	ctx context.Context,
	res *resolver.Resolver,
	flags *flags,
) ([]lookup, error) {
	lookups := make([]lookup, len(flags.names))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(flags.jobs)

	for idx, name := range flags.names {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			match, err := res.Find(name, flags.relative)
			lookups[idx] = lookup{name: name, match: match, err: err}

			if err != nil && !errors.Is(err, resolver.ErrNotFound) &&
				!errors.Is(err, resolver.ErrNativeFilesystem) {
				return fmt.Errorf("resolve %s: %w", name, err)
			}

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return lookups, nil
}

func printLookup(out io.Writer, result lookup, cat bool) error {
	fsys := result.match.FS

	if cat {
		content, err := fsys.ReadFile(result.match.Path)
		if err != nil {
			return fmt.Errorf("read %s: %w", result.match, err)
		}

		_, err = out.Write(content)
		if err != nil {
			return fmt.Errorf("write %s: %w", result.match, err)
		}

		return nil
	}

	size, err := fsys.Size(result.match.Path)
	if err != nil {
		return fmt.Errorf("size %s: %w", result.match, err)
	}

	_, err = fmt.Fprintf(out, "%s\t%s\t%s\t%d\n",
		result.name, fsys.Label(), result.match.Path, size)
	if err != nil {
		return fmt.Errorf("write %s: %w", result.match, err)
	}

	return nil
}

func run(ctx context.Context, flags *flags, fsys afero.Fs, out io.Writer) error {
	cfg := invfs.Config{
		Fs:          fsys,
		MaxLoadSize: flags.maxLoadSize.Bytes(),
	}

	if flags.require {
		cfg.Executor = &printingExecutor{out: out}
		cfg.Native = &printingNative{out: out}
	}

	rt, err := invfs.New(cfg)
	if err != nil {
		return fmt.Errorf("create runtime: %w", err)
	}

	defer closeRuntime(rt)

	appendSearchPath(rt.SearchPath, fsys, flags)

	res := rt.Resolver

	slog.Debug("Search path",
		slog.Int("entries", res.SearchPath.Len()),
		slog.Int64("max_load_size", res.MaxLoadSize),
	)

	if flags.warm {
		err := res.Warm(ctx, flags.jobs)
		if err != nil {
			slog.Warn("Failed to open search path entries", slog.Any("error", err))
		}
	}

	if flags.require {
		return requireAll(ctx, rt, flags.names)
	}

	lookups, err := resolveAll(ctx, res, flags)
	if err != nil {
		return err
	}

	missing := 0

	for _, result := range lookups {
		if !result.found() {
			slog.Warn("Library not found", slog.String("name", result.name))

			missing++

			continue
		}

		if vfs.IsNative(result.match.FS) {
			slog.Debug("Library found on native file system",
				slog.String("name", result.name),
				slog.String("path", result.match.LoadPath()),
			)
		}

		err := printLookup(out, result, flags.cat)
		if err != nil {
			return err
		}
	}

	if missing > 0 {
		return exitcode.NotFound
	}

	return nil
}

func closeRuntime(rt *invfs.Runtime) {
	err := rt.Close()
	if err != nil {
		slog.Error("Failed to close search path entries", slog.Any("error", err))
	}
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	exitCode, isExitErr := exitcode.From(err)

	// Misses have been logged already.
	if !isExitErr {
		slog.Error(err.Error())
	}

	return exitCode
}

// Run is the main entry point for the CLI command. The args must not
// contain the program name.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := newFlagsFromArgs(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(ctx, flags, afero.NewOsFs(), cfg.Stdout)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
