// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package registry maps raw search path entries to virtual file systems.
//
// A [Registry] holds an ordered list of [Handler]s. Native files in the
// search path, like archives, are offered to the handlers in registration
// order and the first handler that recognizes the file opens it. The result
// is memoized per entry for the lifetime of the [Registry], so probing and
// opening happen at most once per entry.
//
// A [Registry] is safe for concurrent use.
package registry
