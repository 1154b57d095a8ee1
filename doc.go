// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package invfs loads library files from archives and other virtual file
// systems that are part of the library search path.
//
// The search path is an ordered list of entries. An entry is a native
// directory, a native archive file, like a zip or cpio archive, or a virtual
// file system built by the embedding application, like a [Union] of
// directories or a [StringMap] of in-memory contents. Archive files are
// recognized by their magic number and opened once, on first use.
//
// A [Runtime] bundles everything needed to resolve and load libraries:
//
//	rt, err := invfs.New(invfs.Config{
//	    SearchPath: "/usr/lib/app/bundle.zip:/usr/lib/app/lib",
//	    Executor:   executor,
//	    Native:     nativeLoader,
//	})
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	loaded, err := rt.Require(ctx, "json")
//
// Names not found in any virtual file system, or found on a native directory
// first, are passed to the [NativeLoader], so the host keeps loading native
// files the way it always did.
//
// Files larger than the load size limit are skipped. The limit is read from
// the INVFS_MAX_LOADSIZE environment variable, unless set in [Config].
package invfs
