// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"errors"
	"fmt"
)

// ErrNoNativeLoader is returned if a name must be loaded natively but the
// [Loader] has no [NativeLoader].
var ErrNoNativeLoader = errors.New("no native loader")

// ErrSizeExceeded is returned if a file to load exceeds the size limit of
// the resolver.
var ErrSizeExceeded = errors.New("load size limit exceeded")

// LoadError is returned if a file to load can not be found.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	msg := "cannot load such file -- " + e.Name
	if e.Err == nil {
		return msg
	}

	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *LoadError) Is(other error) bool {
	_, ok := other.(*LoadError)
	return ok
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
