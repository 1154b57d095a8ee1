// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package loadsize provides the upper limit for the size of files that are
// loaded from virtual file systems.
//
// Limits are given in bytes with an optional binary unit suffix, like "512k",
// "2MiB" or "1.5g". Effective limits are always clamped into [[Min], [Max]].
package loadsize
