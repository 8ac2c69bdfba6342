// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesValidationService rejects malformed ids before the wrapped service
// is reached. Errors match validators.ErrValidation.
type NotesValidationService struct {
	inner     NotesService
	validator validators.Validator
}

func NewNotesValidationService() NotesServiceWrapper {
	return &NotesValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NotesValidationService) Initialize(ctx context.Context) error {
	return v.inner.Initialize(ctx)
}

func (v *NotesValidationService) SaveNote(ctx context.Context, note models.Note) error {
	if err := v.validator.Validate(ctx, note); err != nil {
		return fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.SaveNote(ctx, note)
}

func (v *NotesValidationService) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	return v.inner.GetAllNotes(ctx)
}

// GetNotesInFolder accepts an empty folderID, which selects unfiled notes.
func (v *NotesValidationService) GetNotesInFolder(ctx context.Context, folderID string) ([]models.Note, error) {
	if utf8.RuneCountInString(folderID) > validators.MaxIDLength {
		return nil, fmt.Errorf("error during folder id validation: %w", validators.ErrIDTooLong)
	}

	return v.inner.GetNotesInFolder(ctx, folderID)
}

func (v *NotesValidationService) GetNote(ctx context.Context, id string) (*models.Note, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return nil, fmt.Errorf("error during note id validation: %w", err)
	}

	return v.inner.GetNote(ctx, id)
}

func (v *NotesValidationService) DeleteNote(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("error during note id validation: %w", err)
	}

	return v.inner.DeleteNote(ctx, id)
}

func (v *NotesValidationService) TogglePin(ctx context.Context, id string) (models.Note, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Note{}, fmt.Errorf("error during note id validation: %w", err)
	}

	return v.inner.TogglePin(ctx, id)
}

func (v *NotesValidationService) SaveFolder(ctx context.Context, folder models.Folder) error {
	if err := v.validator.Validate(ctx, folder); err != nil {
		return fmt.Errorf("error during folder validation before saving: %w", err)
	}

	return v.inner.SaveFolder(ctx, folder)
}

func (v *NotesValidationService) GetAllFolders(ctx context.Context) ([]models.Folder, error) {
	return v.inner.GetAllFolders(ctx)
}

func (v *NotesValidationService) DeleteFolder(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("error during folder id validation: %w", err)
	}

	return v.inner.DeleteFolder(ctx, id)
}

func (v *NotesValidationService) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	return v.inner.SearchNotes(ctx, query)
}

func (v *NotesValidationService) Reindex(ctx context.Context) (int64, error) {
	return v.inner.Reindex(ctx)
}

func (v *NotesValidationService) VerifyIndex(ctx context.Context) (models.IndexStatus, error) {
	return v.inner.VerifyIndex(ctx)
}

func (v *NotesValidationService) Wrap(wrapper NotesService) NotesService {
	v.inner = wrapper
	return v
}
