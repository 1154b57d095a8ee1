// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeFiles(tb testing.TB, fsys afero.Fs, files map[string]string) {
	tb.Helper()

	for name, content := range files {
		require.NoError(tb, fsys.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(tb, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
}
