// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loadsize

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// EnvVar is the environment variable the limit is read from by [FromEnv].
const EnvVar = "INVFS_MAX_LOADSIZE"

const (
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30
)

const (
	// Default is the limit used if none is configured.
	Default = 2 * MiB
	// Min is the lowest effective limit.
	Min = 256 * KiB
	// Max is the highest effective limit.
	Max = 64 * MiB
)

// ErrInvalidSize is returned if a size can not be parsed.
var ErrInvalidSize = errors.New("invalid size")

var sizePattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)(?:([kmg])i?)?b?$`)

// Parse parses a size with optional unit suffix into bytes.
//
// The number may have a fractional part. The suffixes "k", "m" and "g" are
// binary units and may be followed by "i", "ib" or "b". Case is ignored, as
// well as surrounding white space. The result is rounded to whole bytes.
func Parse(s string) (int64, error) {
	matches := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	number, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidSize, s, err)
	}

	unit := int64(1)

	switch strings.ToLower(matches[2]) {
	case "k":
		unit = KiB
	case "m":
		unit = MiB
	case "g":
		unit = GiB
	}

	size := math.Round(number * float64(unit))
	if size >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q: too large", ErrInvalidSize, s)
	}

	return int64(size), nil
}

// Clamp returns the size clamped into [[Min], [Max]].
func Clamp(size int64) int64 {
	return min(max(size, Min), Max)
}

// FromEnv returns the effective limit from the [EnvVar] environment variable
// looked up with the given function, usually [os.LookupEnv].
//
// If the variable is not set, [Default] is returned. If it can not be
// parsed, [Default] is returned along with the parse error. So an invalid
// value leaves the limit at [Default]. It is not read as 0, which would
// clamp to [Min].
func FromEnv(lookup func(string) (string, bool)) (int64, error) {
	value, exists := lookup(EnvVar)
	if !exists {
		return Default, nil
	}

	size, err := Parse(value)
	if err != nil {
		return Default, fmt.Errorf("%s: %w", EnvVar, err)
	}

	return Clamp(size), nil
}
