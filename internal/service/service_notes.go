// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// idGenerator produces operation ids.
type idGenerator interface {
	Generate() string
}

// notesService delegates every operation to the store components. Each call
// gets an operation id and a child logger carrying it, attached to ctx so
// the repositories log under the same id.
type notesService struct {
	schema  store.SchemaManager
	notes   store.NoteRepository
	folders store.FolderRepository
	search  store.SearchEngine
	index   store.IndexMaintainer

	ids    idGenerator
	logger *logger.Logger
}

func NewNotesService(storages *store.Storages, logger *logger.Logger) NotesService {
	return &notesService{
		schema:  storages.SchemaManager,
		notes:   storages.NoteRepository,
		folders: storages.FolderRepository,
		search:  storages.SearchEngine,
		index:   storages.IndexMaintainer,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// begin returns ctx enriched with a fresh operation id and a logger bound to
// op and that id.
func (s *notesService) begin(ctx context.Context, op string) (context.Context, *logger.Logger) {
	operationID := s.ids.Generate()

	log := &logger.Logger{Logger: s.logger.With().
		Str("op", op).
		Str("operation_id", operationID).
		Logger()}

	ctx = utils.WithOperationID(ctx, operationID)
	return log.WithContext(ctx), log
}

func (s *notesService) Initialize(ctx context.Context) error {
	ctx, log := s.begin(ctx, "Initialize")

	if err := s.schema.Initialize(ctx); err != nil {
		log.Err(err).Str("func", "notesService.Initialize").Msg("schema initialization failed")
		return fmt.Errorf("%w: %w", ErrSchemaInitialization, err)
	}

	return nil
}

func (s *notesService) SaveNote(ctx context.Context, note models.Note) error {
	ctx, log := s.begin(ctx, "SaveNote")

	if err := s.notes.SaveNote(ctx, note); err != nil {
		log.Err(err).Str("func", "notesService.SaveNote").Str("note_id", note.ID).Msg("error saving note")
		return err
	}

	log.Debug().Str("func", "notesService.SaveNote").Str("note_id", note.ID).Msg("note saved")
	return nil
}

func (s *notesService) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	ctx, log := s.begin(ctx, "GetAllNotes")

	notes, err := s.notes.GetAllNotes(ctx)
	if err != nil {
		log.Err(err).Str("func", "notesService.GetAllNotes").Msg("error listing notes")
		return nil, err
	}

	return notes, nil
}

func (s *notesService) GetNotesInFolder(ctx context.Context, folderID string) ([]models.Note, error) {
	ctx, log := s.begin(ctx, "GetNotesInFolder")

	notes, err := s.notes.GetNotesInFolder(ctx, folderID)
	if err != nil {
		log.Err(err).Str("func", "notesService.GetNotesInFolder").Str("folder_id", folderID).Msg("error listing folder notes")
		return nil, err
	}

	return notes, nil
}

func (s *notesService) GetNote(ctx context.Context, id string) (*models.Note, error) {
	ctx, log := s.begin(ctx, "GetNote")

	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "notesService.GetNote").Str("note_id", id).Msg("error getting note")
		return nil, err
	}

	return note, nil
}

func (s *notesService) DeleteNote(ctx context.Context, id string) error {
	ctx, log := s.begin(ctx, "DeleteNote")

	if err := s.notes.DeleteNote(ctx, id); err != nil {
		log.Err(err).Str("func", "notesService.DeleteNote").Str("note_id", id).Msg("error deleting note")
		return err
	}

	return nil
}

func (s *notesService) TogglePin(ctx context.Context, id string) (models.Note, error) {
	ctx, log := s.begin(ctx, "TogglePin")

	note, err := s.notes.TogglePin(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "notesService.TogglePin").Str("note_id", id).Msg("error toggling pin")
		return models.Note{}, err
	}

	return note, nil
}

func (s *notesService) SaveFolder(ctx context.Context, folder models.Folder) error {
	ctx, log := s.begin(ctx, "SaveFolder")

	if err := s.folders.SaveFolder(ctx, folder); err != nil {
		log.Err(err).Str("func", "notesService.SaveFolder").Str("folder_id", folder.ID).Msg("error saving folder")
		return err
	}

	return nil
}

func (s *notesService) GetAllFolders(ctx context.Context) ([]models.Folder, error) {
	ctx, log := s.begin(ctx, "GetAllFolders")

	folders, err := s.folders.GetAllFolders(ctx)
	if err != nil {
		log.Err(err).Str("func", "notesService.GetAllFolders").Msg("error listing folders")
		return nil, err
	}

	return folders, nil
}

func (s *notesService) DeleteFolder(ctx context.Context, id string) error {
	ctx, log := s.begin(ctx, "DeleteFolder")

	if err := s.folders.DeleteFolder(ctx, id); err != nil {
		log.Err(err).Str("func", "notesService.DeleteFolder").Str("folder_id", id).Msg("error deleting folder")
		return err
	}

	return nil
}

func (s *notesService) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	ctx, log := s.begin(ctx, "SearchNotes")

	notes, err := s.search.SearchNotes(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "notesService.SearchNotes").Msg("search failed")
		return nil, err
	}

	log.Debug().Str("func", "notesService.SearchNotes").Int("found", len(notes)).Msg("search done")
	return notes, nil
}

func (s *notesService) Reindex(ctx context.Context) (int64, error) {
	ctx, log := s.begin(ctx, "Reindex")

	count, err := s.index.Reindex(ctx)
	if err != nil {
		log.Err(err).Str("func", "notesService.Reindex").Msg("reindex failed")
		return 0, err
	}

	log.Info().Str("func", "notesService.Reindex").Int64("indexed", count).Msg("search index rebuilt")
	return count, nil
}

func (s *notesService) VerifyIndex(ctx context.Context) (models.IndexStatus, error) {
	ctx, log := s.begin(ctx, "VerifyIndex")

	status, err := s.index.VerifyIndex(ctx)
	if err != nil {
		log.Err(err).Str("func", "notesService.VerifyIndex").Msg("index verification failed")
		return models.IndexStatus{}, err
	}

	if !status.InSync() {
		log.Warn().
			Str("func", "notesService.VerifyIndex").
			Int64("missing", status.Missing).
			Int64("orphaned", status.Orphaned).
			Msg("search index is out of sync")
	}

	return status, nil
}
