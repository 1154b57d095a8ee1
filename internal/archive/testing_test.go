// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive_test

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/aibor/invfs/internal/archive"
	"github.com/aibor/invfs/internal/vfs"
	"github.com/cavaliergopher/cpio"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// member is a single archive member. If link is set, the member is a
// symbolic link pointing to link, otherwise a regular file with body.
type member struct {
	name string
	body string
	link string
	dir  bool
}

func cpioArchive(tb testing.TB, members ...member) []byte {
	tb.Helper()

	var buf bytes.Buffer

	w := cpio.NewWriter(&buf)

	for _, m := range members {
		hdr := &cpio.Header{Name: m.name}

		var body string

		switch {
		case m.dir:
			hdr.Mode = cpio.TypeDir | cpio.ModePerm
		case m.link != "":
			hdr.Mode = cpio.TypeSymlink | cpio.ModePerm
			body = m.link
		default:
			hdr.Mode = cpio.TypeReg | 0o644
			body = m.body
		}

		hdr.Size = int64(len(body))

		require.NoError(tb, w.WriteHeader(hdr))
		_, err := w.Write([]byte(body))
		require.NoError(tb, err)
	}

	require.NoError(tb, w.Close())

	return buf.Bytes()
}

func zipArchive(tb testing.TB, members ...member) []byte {
	tb.Helper()

	var buf bytes.Buffer

	w := zip.NewWriter(&buf)

	for _, m := range members {
		name := m.name
		if m.dir {
			name += "/"
		}

		fw, err := w.Create(name)
		require.NoError(tb, err)

		_, err = fw.Write([]byte(m.body))
		require.NoError(tb, err)
	}

	require.NoError(tb, w.Close())

	return buf.Bytes()
}

func compress(tb testing.TB, compression archive.Compression, data []byte) []byte {
	tb.Helper()

	var buf bytes.Buffer

	switch compression {
	case archive.CompressionNone:
		return data
	case archive.CompressionGzip:
		w := gzip.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(tb, err)
		require.NoError(tb, w.Close())
	case archive.CompressionZstd:
		w, err := zstd.NewWriter(&buf)
		require.NoError(tb, err)
		_, err = w.Write(data)
		require.NoError(tb, err)
		require.NoError(tb, w.Close())
	case archive.CompressionLZ4:
		w := lz4.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(tb, err)
		require.NoError(tb, w.Close())
	default:
		tb.Fatalf("unknown compression %s", compression)
	}

	return buf.Bytes()
}

func candidateFile(tb testing.TB, name string, data []byte) *vfs.NativePath {
	tb.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(tb, afero.WriteFile(fsys, name, data, 0o644))

	return vfs.NewNativePath(fsys, name)
}

// countingCandidate records how many bytes have been read from it.
type countingCandidate struct {
	data []byte
	read int
}

func (c *countingCandidate) Path() string { return "/counting" }

func (c *countingCandidate) IsFile() bool { return true }

func (c *countingCandidate) Open() (vfs.File, error) {
	return &countingFile{Reader: bytes.NewReader(c.data), candidate: c}, nil
}

type countingFile struct {
	*bytes.Reader

	candidate *countingCandidate
}

func (f *countingFile) Read(p []byte) (int, error) {
	n, err := f.Reader.Read(p)
	f.candidate.read += n

	return n, err //nolint:wrapcheck
}

func (f *countingFile) ReadAt(p []byte, off int64) (int, error) {
	n, err := f.Reader.ReadAt(p, off)
	f.candidate.read += n

	return n, err //nolint:wrapcheck
}

func (f *countingFile) Close() error { return nil }

func (f *countingFile) Stat() (fs.FileInfo, error) { return nil, fs.ErrInvalid }
