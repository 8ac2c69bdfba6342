// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// Storages groups every component built on one store handle.
type Storages struct {
	SchemaManager    SchemaManager
	NoteRepository   NoteRepository
	FolderRepository FolderRepository
	SearchEngine     SearchEngine
	IndexMaintainer  IndexMaintainer
}

// NewStorages wires all store components onto db.
func NewStorages(db *DB, clock utils.Clock, logger *logger.Logger) *Storages {
	validator := validators.NewNoteValidator()

	return &Storages{
		SchemaManager:    NewSchemaManager(db, logger),
		NoteRepository:   NewNoteRepository(db, validator, clock, logger),
		FolderRepository: NewFolderRepository(db, validator, clock, logger),
		SearchEngine:     NewSearchEngine(db, logger),
		IndexMaintainer:  NewIndexMaintainer(db, logger),
	}
}
