// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resolver finds library files in a search path of native
// directories, archives and other virtual file systems.
//
// A [SearchPath] holds the raw entries. A [Resolver] maps each entry through
// a [registry.Registry] and looks the requested name up in the resulting
// file systems in search path order. Names without extension are tried with
// [SourceExt] and [NativeExt] appended.
//
// Relative lookups, and lookups of absolute names, only consider entries
// whose native path, or label for entries that are no native path, is a
// directory prefix of the name. Only those entries are mapped. This is how
// the file system a file was loaded from is found again for loading files
// relative to it.
package resolver
