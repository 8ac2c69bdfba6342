// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every validation failure. Callers match it
// with errors.Is regardless of which rule was violated.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", ErrValidation)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", ErrValidation)

	ErrEmptyID    = fmt.Errorf("%w: id cannot be empty", ErrValidation)
	ErrIDTooLong  = fmt.Errorf("%w: id is longer than %d characters", ErrValidation, MaxIDLength)
	ErrInvalidRow = fmt.Errorf("%w: invalid field value", ErrValidation)
)
