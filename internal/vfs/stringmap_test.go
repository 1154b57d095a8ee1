// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs_test

import (
	"testing"

	"github.com/aibor/invfs/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStringMap(t *testing.T) {
	t.Run("odd arguments", func(t *testing.T) {
		_, err := vfs.NewStringMap("a.rb")
		require.ErrorIs(t, err, vfs.ErrInvalidArgument)
	})

	t.Run("later pair wins", func(t *testing.T) {
		m, err := vfs.NewStringMap("a.rb", "first", "a.rb", "second")
		require.NoError(t, err)

		content, err := m.ReadFile("a.rb")
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})
}

func TestStringMap(t *testing.T) {
	m, err := vfs.NewStringMap(
		"lib.rb", "puts 1",
		"empty.rb", "",
	)
	require.NoError(t, err)

	assert.True(t, m.Exists("lib.rb"))
	assert.True(t, m.Exists("empty.rb"))
	assert.False(t, m.Exists("missing.rb"))

	size, err := m.Size("lib.rb")
	require.NoError(t, err)
	assert.EqualValues(t, 6, size)

	size, err = m.Size("empty.rb")
	require.NoError(t, err)
	assert.EqualValues(t, 0, size)

	_, err = m.Size("missing.rb")
	require.ErrorIs(t, err, vfs.ErrNotFound)

	_, err = m.ReadFile("missing.rb")
	require.ErrorIs(t, err, vfs.ErrNotFound)

	m.Set("missing.rb", []byte("now here"))

	content, err := m.ReadFile("missing.rb")
	require.NoError(t, err)
	assert.Equal(t, "now here", string(content))
}

func TestStringMapReadFileIsCopy(t *testing.T) {
	m, err := vfs.NewStringMap("lib.rb", "abc")
	require.NoError(t, err)

	content, err := m.ReadFile("lib.rb")
	require.NoError(t, err)

	content[0] = 'x'

	again, err := m.ReadFile("lib.rb")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestStringMapLabel(t *testing.T) {
	first, err := vfs.NewStringMap()
	require.NoError(t, err)

	second, err := vfs.NewStringMap()
	require.NoError(t, err)

	assert.Regexp(t, "^stringmap:[0-9a-f-]{36}$", first.Label())
	assert.NotEqual(t, first.Label(), second.Label())
	assert.Equal(t, first.Label(), first.Label())
	assert.False(t, vfs.IsNative(first))
}
