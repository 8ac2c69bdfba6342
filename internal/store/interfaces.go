// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SchemaManager creates and upgrades the database schema.
type SchemaManager interface {
	// Initialize brings the schema up to date. Safe to call any number of
	// times, including on databases created by older releases.
	Initialize(ctx context.Context) error
	// Version returns the latest applied schema version.
	Version(ctx context.Context) (int64, error)
}

// NoteRepository persists notes and keeps the search index in step.
type NoteRepository interface {
	SaveNote(ctx context.Context, note models.Note) error
	GetAllNotes(ctx context.Context) ([]models.Note, error)
	// GetNotesInFolder lists the notes of one folder; an empty folderID
	// lists unfiled notes.
	GetNotesInFolder(ctx context.Context, folderID string) ([]models.Note, error)
	// GetNote returns nil without error when the note does not exist.
	GetNote(ctx context.Context, id string) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (models.Note, error)
}

// FolderRepository persists folders.
type FolderRepository interface {
	SaveFolder(ctx context.Context, folder models.Folder) error
	GetAllFolders(ctx context.Context) ([]models.Folder, error)
	// DeleteFolder unfiles the folder's notes and removes the folder.
	DeleteFolder(ctx context.Context, id string) error
}

// SearchEngine runs full-text queries over notes.
type SearchEngine interface {
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)
}

// IndexMaintainer checks and repairs the search index.
type IndexMaintainer interface {
	// Reindex rebuilds the search index from the notes table and returns the
	// number of indexed notes.
	Reindex(ctx context.Context) (int64, error)
	VerifyIndex(ctx context.Context) (models.IndexStatus, error)
}
