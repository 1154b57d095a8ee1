// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loadsize

import (
	"encoding"
	"flag"

	"github.com/dustin/go-humanize"
)

var (
	_ flag.Value               = (*Value)(nil)
	_ encoding.TextUnmarshaler = (*Value)(nil)
)

// Value is a load size limit that can be used as [flag.Value]. Values it is
// set to are parsed with [Parse] and clamped with [Clamp].
type Value int64

// String implements [flag.Value].
func (v *Value) String() string {
	if v == nil {
		return humanize.IBytes(uint64(Default))
	}

	return humanize.IBytes(uint64(*v)) //nolint:gosec
}

// Set implements [flag.Value].
func (v *Value) Set(s string) error {
	size, err := Parse(s)
	if err != nil {
		return err
	}

	*v = Value(Clamp(size))

	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Value) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

// Bytes returns the limit in bytes. A zero Value is [Default].
func (v Value) Bytes() int64 {
	if v == 0 {
		return Default
	}

	return int64(v)
}
