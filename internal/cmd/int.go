// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrValueOutOfRange = errors.New("value is outside of range")

// boundedIntValue is a [flag.Value] for ints within an inclusive range.
type boundedIntValue struct {
	value    *int
	min, max int
}

func (b *boundedIntValue) String() string {
	if b.value == nil {
		return "0"
	}

	return strconv.Itoa(*b.value)
}

func (b *boundedIntValue) Set(s string) error {
	value, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if value < b.min || value > b.max {
		return fmt.Errorf("%d not in [%d, %d]: %w", value, b.min, b.max, ErrValueOutOfRange)
	}

	*b.value = value

	return nil
}
