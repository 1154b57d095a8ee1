// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive provides virtual file systems backed by archive files and
// the handlers that detect and open them.
//
// Supported are zip archives and SVR4 "newc" cpio archives, the format of
// Linux initramfs images, either plain or compressed with gzip, zstd or lz4.
// Use [Register] to install all handlers into a [registry.Registry].
package archive
