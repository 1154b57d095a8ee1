// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"bytes"
	"fmt"

	"github.com/aibor/invfs/internal/registry"
	"github.com/aibor/invfs/internal/vfs"
)

// MagicSize is the minimum number of bytes a [Handler] reads from a
// candidate file to detect its format. Handlers with longer magic numbers
// read as many bytes as their magic number has.
const MagicSize = 4

var _ registry.Handler = (*Handler)(nil)

// Handler detects an archive format by its magic number and opens matching
// files as [vfs.FS].
type Handler struct {
	name   string
	magics [][]byte
	open   func(vfs.Candidate) (vfs.FS, error)
}

// ZipHandler returns the [Handler] for zip archives.
func ZipHandler() *Handler {
	return &Handler{
		name:   "zip",
		magics: [][]byte{[]byte("PK\x03\x04")},
		open: func(candidate vfs.Candidate) (vfs.FS, error) {
			archive, err := OpenZip(candidate)
			if err != nil {
				return nil, err
			}

			return archive, nil
		},
	}
}

// CPIOHandler returns the [Handler] for cpio archives with the given
// [Compression].
func CPIOHandler(compression Compression) *Handler {
	var magics [][]byte

	switch compression {
	case CompressionNone:
		// The newc format without and with checksum. The old "070707"
		// format is not supported.
		magics = [][]byte{[]byte("070701"), []byte("070702")}
	case CompressionGzip:
		magics = [][]byte{{0x1f, 0x8b, 0x08}}
	case CompressionZstd:
		magics = [][]byte{{0x28, 0xb5, 0x2f, 0xfd}}
	case CompressionLZ4:
		magics = [][]byte{{0x04, 0x22, 0x4d, 0x18}}
	}

	name := "cpio"
	if compression != CompressionNone {
		name += "+" + compression.String()
	}

	return &Handler{
		name:   name,
		magics: magics,
		open: func(candidate vfs.Candidate) (vfs.FS, error) {
			archive, err := OpenCPIO(candidate, compression)
			if err != nil {
				return nil, err
			}

			return archive, nil
		},
	}
}

// Handlers returns all archive handlers in probe order.
func Handlers() []*Handler {
	return []*Handler{
		ZipHandler(),
		CPIOHandler(CompressionNone),
		CPIOHandler(CompressionGzip),
		CPIOHandler(CompressionZstd),
		CPIOHandler(CompressionLZ4),
	}
}

// Register adds all [Handlers] to the given [registry.Registry].
func Register(reg *registry.Registry) error {
	for _, handler := range Handlers() {
		err := reg.Register(handler)
		if err != nil {
			return fmt.Errorf("register %s: %w", handler, err)
		}
	}

	return nil
}

// String implements [fmt.Stringer].
func (h *Handler) String() string {
	return h.name
}

// ProbeSize returns the number of bytes [Handler.Probe] reads. It is
// [MagicSize] or the length of the longest magic number, whichever is
// larger.
func (h *Handler) ProbeSize() int {
	size := MagicSize
	for _, magic := range h.magics {
		size = max(size, len(magic))
	}

	return size
}

// Probe implements [registry.Handler].
//
// It reads the first [Handler.ProbeSize] bytes of the candidate and nothing
// more.
func (h *Handler) Probe(candidate vfs.Candidate) bool {
	if len(h.magics) == 0 {
		return false
	}

	buf := make([]byte, h.ProbeSize())

	err := vfs.ReadMagic(candidate, buf)
	if err != nil {
		return false
	}

	for _, magic := range h.magics {
		if bytes.HasPrefix(buf, magic) {
			return true
		}
	}

	return false
}

// Open implements [registry.Handler].
func (h *Handler) Open(candidate vfs.Candidate) (vfs.FS, error) {
	fsys, err := h.open(candidate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.name, err)
	}

	return fsys, nil
}
