// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"slices"
	"strings"
	"sync"

	"github.com/aibor/invfs/internal/vfs"
	"github.com/spf13/afero"
)

// SearchPathSeparator separates entries in search path lists.
const SearchPathSeparator = ":"

// SearchPath is an ordered list of raw search path entries.
//
// The zero value is an empty search path ready to use. A SearchPath is safe
// for concurrent use. Lookups work on a snapshot of the entries, so changes
// during a lookup take effect with the next one.
type SearchPath struct {
	mu      sync.RWMutex
	entries []vfs.FS
}

// ParseSearchPath creates a [SearchPath] from a list of native paths
// separated by [SearchPathSeparator]. Empty elements are ignored. A nil
// fsys means the OS file system.
func ParseSearchPath(fsys afero.Fs, list string) *SearchPath {
	searchPath := &SearchPath{}

	for path := range strings.SplitSeq(list, SearchPathSeparator) {
		if path == "" {
			continue
		}

		searchPath.Append(vfs.NewNativePath(fsys, path))
	}

	return searchPath
}

// Append adds entries to the end.
func (s *SearchPath) Append(entries ...vfs.FS) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entries...)
}

// Prepend adds entries to the front, keeping their order.
func (s *SearchPath) Prepend(entries ...vfs.FS) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.Concat(entries, s.entries)
}

// Set replaces all entries.
func (s *SearchPath) Set(entries ...vfs.FS) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.Clone(entries)
}

// Entries returns a snapshot of the current entries.
func (s *SearchPath) Entries() []vfs.FS {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.entries)
}

// Len returns the number of entries.
func (s *SearchPath) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
