// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package loader loads library files found by a [resolver.Resolver].
//
// The [Loader] does not execute anything itself. Source files are handed to
// an [Executor] for evaluation, native extensions are handed to it for
// staging and loading. Names that can not be found in a virtual file system
// are passed on to a [NativeLoader].
package loader
