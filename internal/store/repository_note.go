// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQLite-backed implementation of [NoteRepository].
//
// Every write touches the notes table and then the notes_fts mirror within
// a single scoped access on the store handle.
type noteRepository struct {
	db        *DB
	validator validators.Validator
	clock     utils.Clock
	logger    *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, validator validators.Validator, clock utils.Clock, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:        db,
		validator: validator,
		clock:     clock,
		logger:    logger,
	}
}

// SaveNote upserts note by id and rewrites its search-index row.
//
// Timestamps: a non-empty UpdatedAt from the caller is stored as is,
// otherwise the current time is used. CreatedAt defaults to now and is only
// written on insert. PinnedAt is cleared for unpinned notes and defaulted to
// now for pinned notes that lack it.
//
// When the index write fails the primary row stays written and an
// [*IndexSyncError] is returned.
func (r *noteRepository) SaveNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, note); err != nil {
		log.Warn().Err(err).Str("func", "noteRepository.SaveNote").Msg("invalid note")
		return err
	}

	now := utils.NowTimestamp(r.clock)
	if note.UpdatedAt == "" {
		note.UpdatedAt = now
	}
	if note.CreatedAt == "" {
		note.CreatedAt = now
	}
	if !note.IsPinned {
		note.PinnedAt = nil
	} else if note.PinnedAt == nil {
		note.PinnedAt = &now
	}

	return r.db.WithConnection(ctx, "SaveNote", func(ctx context.Context, conn Conn) error {
		_, err := conn.ExecContext(ctx, upsertNote,
			note.ID,
			note.Title,
			note.Content,
			note.FolderID,
			note.IsPinned,
			note.PinnedAt,
			note.Font,
			note.UpdatedAt,
			note.CreatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.SaveNote").
				Str("note_id", note.ID).
				Msg("failed to upsert note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err := writeNoteIndex(ctx, conn, note); err != nil {
			log.Warn().Err(err).
				Str("func", "noteRepository.SaveNote").
				Str("note_id", note.ID).
				Msg("search index sync failed")
			return &IndexSyncError{NoteID: note.ID, Err: err}
		}

		log.Debug().
			Str("func", "noteRepository.SaveNote").
			Str("note_id", note.ID).
			Msg("note saved")
		return nil
	})
}

// writeNoteIndex replaces the index row of note.
func writeNoteIndex(ctx context.Context, conn Conn, note models.Note) error {
	if _, err := conn.ExecContext(ctx, deleteNoteIndex, note.ID); err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, insertNoteIndex, note.ID, note.Title, note.Content); err != nil {
		return err
	}

	return nil
}

// GetAllNotes lists every note: pinned first (most recently pinned first),
// then by most recent update.
func (r *noteRepository) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	return r.listNotes(ctx, "GetAllNotes", nil)
}

// GetNotesInFolder lists the notes of folderID in the GetAllNotes order.
// An empty folderID lists unfiled notes.
func (r *noteRepository) GetNotesInFolder(ctx context.Context, folderID string) ([]models.Note, error) {
	return r.listNotes(ctx, "GetNotesInFolder", &folderID)
}

func (r *noteRepository) listNotes(ctx context.Context, op string, folderID *string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(ctx, folderID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository."+op).Msg("failed to build query")
		return nil, &StorageError{Op: op, Class: NonRetryable, Err: err}
	}

	var notes []models.Note
	err = r.db.WithConnection(ctx, op, func(ctx context.Context, conn Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "noteRepository."+op).Msg("failed to query notes")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		notes, err = scanNotes(rows)
		if err != nil {
			log.Err(err).Str("func", "noteRepository."+op).Msg("failed to scan notes")
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// GetNote returns the note with id, or nil when there is none.
func (r *noteRepository) GetNote(ctx context.Context, id string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, id); err != nil {
		return nil, err
	}

	var found *models.Note
	err := r.db.WithConnection(ctx, "GetNote", func(ctx context.Context, conn Conn) error {
		note, err := scanNote(conn.QueryRowContext(ctx, getNote, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.GetNote").
				Str("note_id", id).
				Msg("failed to scan note")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		found = &note
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// DeleteNote removes the note and, best effort, its index row. A failed index
// delete is logged and not returned. Deleting a missing note is a no-op.
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, id); err != nil {
		return err
	}

	return r.db.WithConnection(ctx, "DeleteNote", func(ctx context.Context, conn Conn) error {
		res, err := conn.ExecContext(ctx, deleteNote, id)
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.DeleteNote").
				Str("note_id", id).
				Msg("failed to delete note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			log.Warn().
				Str("func", "noteRepository.DeleteNote").
				Str("note_id", id).
				Msg("attempted to delete non-existent note")
		}

		if _, err := conn.ExecContext(ctx, deleteNoteIndex, id); err != nil {
			log.Warn().Err(&IndexSyncError{NoteID: id, Err: err}).
				Str("func", "noteRepository.DeleteNote").
				Str("note_id", id).
				Msg("failed to delete search index row")
		}

		return nil
	})
}

// TogglePin flips the pinned state of the note and returns it as persisted.
// The read and the update run in one transaction.
func (r *noteRepository) TogglePin(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, id); err != nil {
		return models.Note{}, err
	}

	var toggled models.Note
	err := r.db.WithTransaction(ctx, "TogglePin", func(ctx context.Context, tx Conn) error {
		note, err := scanNote(tx.QueryRowContext(ctx, getNote, id))
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "noteRepository.TogglePin").
				Str("note_id", id).
				Msg("note not found")
			return fmt.Errorf("%w: note %s", ErrNotFound, id)
		}
		if err != nil {
			log.Err(err).
				Str("func", "noteRepository.TogglePin").
				Str("note_id", id).
				Msg("failed to scan note")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		now := utils.NowTimestamp(r.clock)
		note.IsPinned = !note.IsPinned
		note.PinnedAt = nil
		if note.IsPinned {
			note.PinnedAt = &now
		}
		note.UpdatedAt = now

		if _, err := tx.ExecContext(ctx, updateNotePin, note.IsPinned, note.PinnedAt, note.UpdatedAt, note.ID); err != nil {
			log.Err(err).
				Str("func", "noteRepository.TogglePin").
				Str("note_id", id).
				Msg("failed to update pin state")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		toggled = note
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}

	log.Debug().
		Str("func", "noteRepository.TogglePin").
		Str("note_id", id).
		Bool("is_pinned", toggled.IsPinned).
		Msg("pin toggled")
	return toggled, nil
}
