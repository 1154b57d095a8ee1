// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aibor/invfs/internal/vfs"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeZip(tb testing.TB, fsys afero.Fs, name string, files map[string]string) {
	tb.Helper()

	var buf bytes.Buffer

	w := zip.NewWriter(&buf)

	for member, content := range files {
		fw, err := w.Create(member)
		require.NoError(tb, err)

		_, err = fw.Write([]byte(content))
		require.NoError(tb, err)
	}

	require.NoError(tb, w.Close())
	require.NoError(tb, afero.WriteFile(fsys, name, buf.Bytes(), 0o644))
}

func stringMap(tb testing.TB, pairs ...string) *vfs.StringMap {
	tb.Helper()

	m, err := vfs.NewStringMap(pairs...)
	require.NoError(tb, err)

	return m
}

var errBrokenBackend = errors.New("broken backend")

// brokenFS reports all files to exist but fails to tell their size.
type brokenFS struct{}

func (brokenFS) Exists(string) bool { return true }

func (brokenFS) Size(name string) (int64, error) {
	return 0, &vfs.PathError{Op: "size", Path: name, Err: errBrokenBackend}
}

func (brokenFS) ReadFile(name string) ([]byte, error) {
	return nil, &vfs.PathError{Op: "read", Path: name, Err: errBrokenBackend}
}

func (brokenFS) Label() string { return "broken" }
