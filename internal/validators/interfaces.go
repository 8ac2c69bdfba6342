// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes, folders and bare ids before they reach
// the store.
//
// The rules themselves are `validate` struct tags on the models, evaluated
// by go-playground/validator. Failures come back wrapped in ErrValidation,
// with ErrEmptyID and ErrIDTooLong singled out so the CLI can report an
// invalid id distinctly from other bad input. Pass FieldID to Validate to
// check only the id of a note or folder.
package validators

import "context"

// Validator checks a models.Note, a models.Folder or a bare id string.
// Optional field names restrict a struct check to those fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
