// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func zipArchive(tb testing.TB, files map[string]string) []byte {
	tb.Helper()

	var buf bytes.Buffer

	w := zip.NewWriter(&buf)

	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(tb, err)

		_, err = fw.Write([]byte(content))
		require.NoError(tb, err)
	}

	require.NoError(tb, w.Close())

	return buf.Bytes()
}

func writeFiles(tb testing.TB, fsys afero.Fs, files map[string][]byte) {
	tb.Helper()

	for name, content := range files {
		require.NoError(tb, afero.WriteFile(fsys, name, content, 0o644))
	}
}

// unsetEnv removes the variables for the duration of the test.
func unsetEnv(tb testing.TB, keys ...string) {
	tb.Helper()

	for _, key := range keys {
		tb.Setenv(key, "")
		require.NoError(tb, os.Unsetenv(key))
	}
}
