// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error Order returns.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which argument was rejected and why.
type ArgumentError struct {
	// Arg is the argument name: "record" or "priority".
	Arg string

	// Reason describes the problem.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Arg, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidRecord(format string, args ...any) error {
	return &ArgumentError{Arg: "record", Reason: fmt.Sprintf(format, args...)}
}

func invalidPriority(format string, args ...any) error {
	return &ArgumentError{Arg: "priority", Reason: fmt.Sprintf(format, args...)}
}
