// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesService is the operation set exposed to the host application.
type NotesService interface {
	// Initialize brings the database schema up to date. It must succeed
	// before any other operation is called.
	Initialize(ctx context.Context) error

	SaveNote(ctx context.Context, note models.Note) error
	GetAllNotes(ctx context.Context) ([]models.Note, error)
	GetNotesInFolder(ctx context.Context, folderID string) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (models.Note, error)

	SaveFolder(ctx context.Context, folder models.Folder) error
	GetAllFolders(ctx context.Context) ([]models.Folder, error)
	DeleteFolder(ctx context.Context, id string) error

	// SearchNotes returns at most 50 notes matching query, best match first.
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)

	Reindex(ctx context.Context) (int64, error)
	VerifyIndex(ctx context.Context) (models.IndexStatus, error)
}

// NotesServiceWrapper defines middleware composition for NotesService.
// Implementations wrap an existing NotesService to add behavior such as
// logging or validating.
type NotesServiceWrapper interface {
	Wrap(NotesService) NotesService // returns a decorated NotesService applying additional behavior
}

// AppInfoService reports build metadata of the running binary together with
// the schema version of the opened database.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) (models.AppInfo, error)
}
