// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import (
	"fmt"

	"github.com/aibor/invfs/internal/vfs"
)

// Handler turns native files of a specific format into a [vfs.FS].
type Handler interface {
	// Probe reports whether the handler can open the given file. It should
	// read as little of the file as possible.
	Probe(candidate vfs.Candidate) bool

	// Open opens the given file as [vfs.FS]. It is called at most once per
	// file and only if Probe returned true.
	Open(candidate vfs.Candidate) (vfs.FS, error)
}

var _ Handler = HandlerFuncs{}

// HandlerFuncs is a [Handler] built from functions.
//
// Both functions must be set, otherwise [Registry.Register] rejects it.
type HandlerFuncs struct {
	Name      string
	ProbeFunc func(vfs.Candidate) bool
	OpenFunc  func(vfs.Candidate) (vfs.FS, error)
}

// Probe implements [Handler].
func (h HandlerFuncs) Probe(candidate vfs.Candidate) bool {
	return h.ProbeFunc(candidate)
}

// Open implements [Handler].
func (h HandlerFuncs) Open(candidate vfs.Candidate) (vfs.FS, error) {
	return h.OpenFunc(candidate)
}

// String implements [fmt.Stringer].
func (h HandlerFuncs) String() string {
	return h.Name
}

func (h HandlerFuncs) validate() error {
	if h.ProbeFunc == nil {
		return fmt.Errorf("%w: %s: probe function is nil", ErrInvalidHandler, h.Name)
	}

	if h.OpenFunc == nil {
		return fmt.Errorf("%w: %s: open function is nil", ErrInvalidHandler, h.Name)
	}

	return nil
}

func validateHandler(handler Handler) error {
	switch h := handler.(type) {
	case nil:
		return fmt.Errorf("%w: handler is nil", ErrInvalidHandler)
	case HandlerFuncs:
		return h.validate()
	case *HandlerFuncs:
		if h == nil {
			return fmt.Errorf("%w: handler is nil", ErrInvalidHandler)
		}

		return h.validate()
	default:
		return nil
	}
}

func handlerName(handler Handler) string {
	if stringer, ok := handler.(fmt.Stringer); ok {
		return stringer.String()
	}

	return fmt.Sprintf("%T", handler)
}
