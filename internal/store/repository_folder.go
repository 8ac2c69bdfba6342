// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type folderRepository struct {
	db        *DB
	validator validators.Validator
	clock     utils.Clock
	logger    *logger.Logger
}

// NewFolderRepository constructs a [FolderRepository] backed by db.
func NewFolderRepository(db *DB, validator validators.Validator, clock utils.Clock, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		db:        db,
		validator: validator,
		clock:     clock,
		logger:    logger,
	}
}

// SaveFolder upserts folder by id. Only the name is overwritten on conflict.
func (r *folderRepository) SaveFolder(ctx context.Context, folder models.Folder) error {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, folder); err != nil {
		log.Warn().Err(err).Str("func", "folderRepository.SaveFolder").Msg("invalid folder")
		return err
	}

	if folder.CreatedAt == "" {
		folder.CreatedAt = utils.NowTimestamp(r.clock)
	}

	return r.db.WithConnection(ctx, "SaveFolder", func(ctx context.Context, conn Conn) error {
		if _, err := conn.ExecContext(ctx, upsertFolder, folder.ID, folder.Name, folder.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "folderRepository.SaveFolder").
				Str("folder_id", folder.ID).
				Msg("failed to upsert folder")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

// GetAllFolders lists folders, newest first.
func (r *folderRepository) GetAllFolders(ctx context.Context) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	folders := make([]models.Folder, 0)
	err := r.db.WithConnection(ctx, "GetAllFolders", func(ctx context.Context, conn Conn) error {
		rows, err := conn.QueryContext(ctx, getAllFolders)
		if err != nil {
			log.Err(err).Str("func", "folderRepository.GetAllFolders").Msg("failed to query folders")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var folder models.Folder
			if err := rows.Scan(&folder.ID, &folder.Name, &folder.CreatedAt); err != nil {
				log.Err(err).Str("func", "folderRepository.GetAllFolders").Msg("failed to scan folder row")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			folders = append(folders, folder)
		}

		if err := rows.Err(); err != nil {
			log.Err(err).Str("func", "folderRepository.GetAllFolders").Msg("error iterating folder rows")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return folders, nil
}

// DeleteFolder unfiles every note in the folder and removes the folder, in
// one transaction. Deleting a missing folder is a no-op.
func (r *folderRepository) DeleteFolder(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, id); err != nil {
		return err
	}

	return r.db.WithTransaction(ctx, "DeleteFolder", func(ctx context.Context, tx Conn) error {
		res, err := tx.ExecContext(ctx, unfileFolderNotes, id)
		if err != nil {
			log.Err(err).
				Str("func", "folderRepository.DeleteFolder").
				Str("folder_id", id).
				Msg("failed to unfile notes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		unfiled, _ := res.RowsAffected()

		if _, err := tx.ExecContext(ctx, deleteFolder, id); err != nil {
			log.Err(err).
				Str("func", "folderRepository.DeleteFolder").
				Str("folder_id", id).
				Msg("failed to delete folder")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Debug().
			Str("func", "folderRepository.DeleteFolder").
			Str("folder_id", id).
			Int64("unfiled_notes", unfiled).
			Msg("folder deleted")
		return nil
	})
}
