// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/aibor/invfs/internal/vfs"
	"github.com/cavaliergopher/cpio"
)

var _ vfs.FS = (*CPIO)(nil)

// CPIO is a virtual file system on top of a cpio archive in SVR4 "newc"
// format.
//
// Since cpio archives can only be read sequentially, all regular files and
// symbolic links are read into memory when the archive is read. Symbolic
// links are followed inside of the archive.
type CPIO struct {
	label string
	kind  string
	tree  index
}

// ReadCPIO reads a cpio archive from the given reader. The label is used as
// [CPIO.Label], usually the native path of the archive file.
func ReadCPIO(label string, reader io.Reader) (*CPIO, error) {
	return readCPIO(label, "cpio", reader)
}

func readCPIO(label, kind string, reader io.Reader) (*CPIO, error) {
	archive := &CPIO{
		label: label,
		kind:  kind,
		tree:  make(index),
	}

	cpioReader := cpio.NewReader(reader)

	for {
		hdr, err := cpioReader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}

		switch hdr.FileInfo().Mode().Type() {
		case 0:
			data, err := io.ReadAll(io.LimitReader(cpioReader, hdr.Size))
			if err != nil {
				return nil, fmt.Errorf("read body for %s: %w", hdr.Name, err)
			}

			archive.tree.addFile(hdr.Name, data)
		case fs.ModeSymlink:
			archive.tree.addLink(hdr.Name, hdr.Linkname)
		default:
			// Directories and special files are not loadable.
		}
	}

	return archive, nil
}

// Label implements [vfs.FS].
func (c *CPIO) Label() string {
	return c.label
}

// String implements [fmt.Stringer].
func (c *CPIO) String() string {
	return c.label + " (" + c.kind + ")"
}

// Names returns the names of all regular files in the archive, sorted.
func (c *CPIO) Names() []string {
	return c.tree.names()
}

// Exists implements [vfs.FS].
func (c *CPIO) Exists(name string) bool {
	_, err := c.tree.file(name)
	return err == nil
}

// Size implements [vfs.FS].
func (c *CPIO) Size(name string) (int64, error) {
	n, err := c.tree.file(name)
	if err != nil {
		return 0, &PathError{Op: "size", Path: name, Err: err}
	}

	return int64(len(n.data)), nil
}

// ReadFile implements [vfs.FS]. The returned slice is a copy.
func (c *CPIO) ReadFile(name string) ([]byte, error) {
	n, err := c.tree.file(name)
	if err != nil {
		return nil, &PathError{Op: "read", Path: name, Err: err}
	}

	return slices.Clone(n.data), nil
}
