// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package vfs defines the capability set a virtual file system must provide
// to take part in library name resolution.
//
// Besides the [FS] contract it provides the basic backends: [NativePath] for
// plain native directories and files, [Union] for an ordered list of native
// directories and [StringMap] for in-memory contents. Archive backed file
// systems live in their own package.
//
// Native file access goes through an [afero.Fs], so all backends can be used
// on top of an in-memory file system as well.
package vfs
