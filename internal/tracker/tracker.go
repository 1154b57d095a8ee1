// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package tracker records which library files have been loaded.
package tracker

import (
	"slices"
	"sync"

	"github.com/aibor/invfs/internal/vfs"
)

// Prefix is prepended to all features recorded for files loaded from a
// virtual file system.
const Prefix = "<invfs>:"

// Feature returns the feature string recorded for the file at path inside the
// file system with the given label.
func Feature(label, path string) string {
	return Prefix + vfs.JoinLabel(label, path)
}

// Tracker is an ordered set of loaded features. Features of files loaded
// from virtual file systems are created with [Feature], all others are
// recorded as given.
//
// The zero value is ready to use. A Tracker is safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	features []string
}

// Loaded reports whether the file at path inside the file system with the
// given label has been recorded.
func (t *Tracker) Loaded(label, path string) bool {
	return t.Contains(Feature(label, path))
}

// MarkLoaded records the file at path inside the file system with the given
// label. It returns false if it has been recorded already.
func (t *Tracker) MarkLoaded(label, path string) bool {
	return t.Add(Feature(label, path))
}

// Add appends the feature. It returns false if it is present already.
func (t *Tracker) Add(feature string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if slices.Contains(t.features, feature) {
		return false
	}

	t.features = append(t.features, feature)

	return true
}

// Remove deletes the feature. It returns false if it is not present.
func (t *Tracker) Remove(feature string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.Index(t.features, feature)
	if idx < 0 {
		return false
	}

	t.features = slices.Delete(t.features, idx, idx+1)

	return true
}

// Contains reports whether the feature is present.
func (t *Tracker) Contains(feature string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Contains(t.features, feature)
}

// Features returns all features in the order they have been recorded.
func (t *Tracker) Features() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.features)
}
