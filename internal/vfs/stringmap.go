// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

var _ FS = (*StringMap)(nil)

// StringMap is an in-memory file system that maps names to contents.
//
// It does not touch any native file system. Its label is a random token
// unique to the instance.
type StringMap struct {
	mu      sync.RWMutex
	entries map[string][]byte
	label   string
}

// NewStringMap creates a new [StringMap] from the given flat list of name and
// content pairs. Later pairs overwrite earlier ones with the same name.
//
// It returns [ErrInvalidArgument] if the number of arguments is odd.
func NewStringMap(pairs ...string) (*StringMap, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf(
			"%w: odd number of name and content arguments: %d",
			ErrInvalidArgument,
			len(pairs),
		)
	}

	m := &StringMap{
		entries: make(map[string][]byte, len(pairs)/2),
		label:   "stringmap:" + uuid.NewString(),
	}

	for idx := 0; idx < len(pairs); idx += 2 {
		m.entries[pairs[idx]] = []byte(pairs[idx+1])
	}

	return m, nil
}

// Set adds or replaces the content for the given name.
func (m *StringMap) Set(name string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[name] = slices.Clone(content)
}

// Label implements [FS].
func (m *StringMap) Label() string {
	return m.label
}

// String implements [fmt.Stringer].
func (m *StringMap) String() string {
	return m.label
}

// Exists implements [FS].
func (m *StringMap) Exists(name string) bool {
	_, exists := m.get(name)
	return exists
}

// Size implements [FS].
func (m *StringMap) Size(name string) (int64, error) {
	content, exists := m.get(name)
	if !exists {
		return 0, notFound("size", name)
	}

	return int64(len(content)), nil
}

// ReadFile implements [FS]. The returned slice is a copy.
func (m *StringMap) ReadFile(name string) ([]byte, error) {
	content, exists := m.get(name)
	if !exists {
		return nil, notFound("read", name)
	}

	return slices.Clone(content), nil
}

func (m *StringMap) get(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, exists := m.entries[name]

	return content, exists
}
