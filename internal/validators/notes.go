// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-playground/validator/v10"
)

// MaxIDLength is the longest note or folder id accepted, in characters.
const MaxIDLength = 100

// Field names accepted by Validate to restrict validation to a subset of
// struct fields. They match the Go field names of the models.
const (
	// FieldID targets the id of a note or folder.
	FieldID = "ID"
)

// idRule is applied to bare ids passed as strings.
var idRule = fmt.Sprintf("required,max=%d", MaxIDLength)

// NoteValidator implements the Validator interface for notes, folders and
// bare ids. Rules live in the `validate` struct tags of the models and are
// evaluated by go-playground/validator; violations are translated into this
// package's sentinel errors.
type NoteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator constructs a NoteValidator and returns it as the Validator
// interface.
func NewNoteValidator() Validator {
	return &NoteValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Note / *models.Note
//   - models.Folder / *models.Folder
//   - string (an id)
//
// Optional fields restrict struct validation to the named fields (see FieldID).
// Every returned error matches ErrValidation.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateStruct(value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(*value, fields...)

	case models.Folder:
		return v.validateStruct(value, fields...)
	case *models.Folder:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(*value, fields...)

	case string:
		return v.validateID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateID(id string) error {
	if err := v.validate.Var(id, idRule); err != nil {
		return translate(err)
	}

	return nil
}

func (v *NoteValidator) validateStruct(obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(obj)
	} else {
		for _, f := range fields {
			if f != FieldID {
				return ErrUnknownField
			}
		}
		err = v.validate.StructPartial(obj, fields...)
	}
	if err != nil {
		return translate(err)
	}

	return nil
}

// translate maps the first go-playground field error onto a sentinel.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return ErrEmptyID
	case "max":
		return ErrIDTooLong
	default:
		return fmt.Errorf("%w: %s failed on %q", ErrInvalidRow, fe.Field(), fe.Tag())
	}
}
