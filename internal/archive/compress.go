// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aibor/invfs/internal/vfs"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the compression of a cpio archive stream.
type Compression int

const (
	// CompressionNone is a plain cpio archive.
	CompressionNone Compression = iota
	// CompressionGzip is a gzip compressed cpio archive.
	CompressionGzip
	// CompressionZstd is a zstd compressed cpio archive.
	CompressionZstd
	// CompressionLZ4 is a cpio archive compressed in lz4 frame format.
	CompressionLZ4
)

// String returns the human-readable name of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// decompress wraps the given reader with a decompressing reader. The returned
// function releases the decompressor's resources.
func (c Compression) decompress(reader io.Reader) (io.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return bufio.NewReader(reader), func() {}, nil
	case CompressionGzip:
		gzipReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}

		return gzipReader, func() { _ = gzipReader.Close() }, nil
	case CompressionZstd:
		zstdReader, err := zstd.NewReader(reader, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}

		return zstdReader, zstdReader.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(reader), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}
}

// OpenCPIO opens the given [vfs.Candidate] as cpio archive compressed with the
// given [Compression].
func OpenCPIO(candidate vfs.Candidate, compression Compression) (*CPIO, error) {
	file, err := candidate.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	reader, release, err := compression.decompress(file)
	if err != nil {
		return nil, err
	}
	defer release()

	kind := "cpio"
	if compression != CompressionNone {
		kind += "+" + compression.String()
	}

	archive, err := readCPIO(candidate.Path(), kind, reader)
	if err != nil {
		return nil, err
	}

	return archive, nil
}
