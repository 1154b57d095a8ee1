// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import (
	"errors"
	"fmt"
)

// ErrInvalidHandler is returned if a handler can not be registered because
// it can not probe or open files.
var ErrInvalidHandler = errors.New("invalid handler")

// OpenError is returned if a handler recognized a file but failed to open it.
type OpenError struct {
	Path    string
	Handler string
	Err     error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s with handler %s: %v", e.Path, e.Handler, e.Err)
}

func (e *OpenError) Is(other error) bool {
	_, ok := other.(*OpenError)
	return ok
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
