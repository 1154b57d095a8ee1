// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Stage writes the code of a native extension into a new temporary
// directory on fsys, so it can be loaded by the host from a native path. A
// nil fsys means the OS file system.
//
// The file is named name, created exclusively and only accessible by the
// owner. The returned function removes the directory again.
func Stage(fsys afero.Fs, name string, code []byte) (string, func() error, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	dir, err := afero.TempDir(fsys, "", "invfs-")
	if err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}

	cleanup := func() error {
		return fsys.RemoveAll(dir) //nolint:wrapcheck
	}

	path := filepath.Join(dir, filepath.Base(name))

	err = writeExclusive(fsys, path, code)
	if err != nil {
		_ = cleanup()
		return "", nil, err
	}

	return path, cleanup, nil
}

func writeExclusive(fsys afero.Fs, path string, code []byte) error {
	file, err := fsys.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o700)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	_, err = file.Write(code)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("write: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}
