// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/invfs"
)

var (
	_ invfs.Executor     = (*printingExecutor)(nil)
	_ invfs.NativeLoader = (*printingNative)(nil)
)

// printingExecutor writes a line for each file loaded instead of running it.
type printingExecutor struct {
	out io.Writer
}

func (e *printingExecutor) Eval(_ context.Context, code []byte, loadPath string) error {
	_, err := fmt.Fprintf(e.out, "eval\t%s\t%d\n", loadPath, len(code))
	return err //nolint:wrapcheck
}

func (e *printingExecutor) LoadNative(_ context.Context, name string, code []byte) (string, error) {
	_, err := fmt.Fprintf(e.out, "ext\t%s\t%d\n", name, len(code))
	return "", err //nolint:wrapcheck
}

// printingNative writes a line for each name handed over to native loading.
type printingNative struct {
	out io.Writer
}

func (n *printingNative) Require(_ context.Context, name string) (bool, error) {
	_, err := fmt.Fprintf(n.out, "native\t%s\n", name)
	return err == nil, err //nolint:wrapcheck
}

func (n *printingNative) RequireRelative(ctx context.Context, name, _ string) (bool, error) {
	return n.Require(ctx, name)
}

// requireAll loads the given names in order. Loading is order dependent, so
// it is not done concurrently.
func requireAll(ctx context.Context, rt *invfs.Runtime, names []string) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		loaded, err := rt.Require(ctx, name)
		if err != nil {
			return fmt.Errorf("require %s: %w", name, err)
		}

		if !loaded {
			slog.Debug("Library loaded already", slog.String("name", name))
		}
	}

	return nil
}
