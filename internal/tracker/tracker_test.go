// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tracker_test

import (
	"sync"
	"testing"

	"github.com/aibor/invfs/internal/tracker"
	"github.com/stretchr/testify/assert"
)

func TestFeature(t *testing.T) {
	tests := []struct {
		label    string
		path     string
		expected string
	}{
		{label: "/gems/bundle.zip", path: "foo.rb", expected: "<invfs>:/gems/bundle.zip/foo.rb"},
		{label: "/gems/", path: "/foo.rb", expected: "<invfs>:/gems/foo.rb"},
		{label: "", path: "foo.rb", expected: "<invfs>:foo.rb"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tracker.Feature(tt.label, tt.path))
		})
	}
}

func TestTracker(t *testing.T) {
	var loaded tracker.Tracker

	assert.False(t, loaded.Loaded("/gems/bundle.zip", "foo.rb"))
	assert.True(t, loaded.MarkLoaded("/gems/bundle.zip", "foo.rb"))
	assert.False(t, loaded.MarkLoaded("/gems/bundle.zip", "foo.rb"), "second mark")
	assert.True(t, loaded.Loaded("/gems/bundle.zip", "foo.rb"))
	assert.False(t, loaded.Loaded("/gems/other.zip", "foo.rb"))

	assert.True(t, loaded.Add("/tmp/staged/bar.so"))
	assert.True(t, loaded.Contains("/tmp/staged/bar.so"))
	assert.True(t, loaded.Remove("/tmp/staged/bar.so"))
	assert.False(t, loaded.Remove("/tmp/staged/bar.so"), "second remove")
	assert.False(t, loaded.Contains("/tmp/staged/bar.so"))

	assert.True(t, loaded.Add("json"))
	assert.Equal(t, []string{"<invfs>:/gems/bundle.zip/foo.rb", "json"}, loaded.Features())
}

func TestTrackerConcurrent(t *testing.T) {
	var (
		loaded tracker.Tracker
		added  [8]bool
		wg     sync.WaitGroup
	)

	for idx := range added {
		wg.Add(1)

		go func() {
			defer wg.Done()

			added[idx] = loaded.MarkLoaded("/gems/bundle.zip", "foo.rb")
		}()
	}

	wg.Wait()

	count := 0

	for _, ok := range added {
		if ok {
			count++
		}
	}

	assert.Equal(t, 1, count)
	assert.Len(t, loaded.Features(), 1)
}
