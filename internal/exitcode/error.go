// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode maps errors to process exit codes.
package exitcode

import (
	"errors"
	"fmt"
)

// NotFound is the exit code if at least one name could not be resolved.
const NotFound Error = 1

// Error is an exit code that is considered an error. It is returned if the
// command ran but the result is a failure that needs no further message.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("non-zero exit code: %d", e)
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit code as basic int type.
func (e Error) Code() int {
	return int(e)
}

// From returns the exit code for the given error and whether it was an
// [Error].
//
// A nil error is exit code 0. An [Error] anywhere in the chain is its
// [Error.Code]. Any other error is -1.
func From(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code(), true
	}

	return -1, false
}
