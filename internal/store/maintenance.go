// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type indexMaintainer struct {
	db     *DB
	logger *logger.Logger
}

// NewIndexMaintainer constructs an [IndexMaintainer] for db.
func NewIndexMaintainer(db *DB, logger *logger.Logger) IndexMaintainer {
	return &indexMaintainer{
		db:     db,
		logger: logger,
	}
}

// Reindex drops every index row and copies title and content of all notes
// back in, in one transaction.
func (m *indexMaintainer) Reindex(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var indexed int64
	err := m.db.WithTransaction(ctx, "Reindex", func(ctx context.Context, tx Conn) error {
		if _, err := tx.ExecContext(ctx, clearNoteIndex); err != nil {
			log.Err(err).Str("func", "indexMaintainer.Reindex").Msg("failed to clear search index")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err := tx.ExecContext(ctx, rebuildNoteIndex); err != nil {
			log.Err(err).Str("func", "indexMaintainer.Reindex").Msg("failed to rebuild search index")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err := tx.QueryRowContext(ctx, countIndexed).Scan(&indexed); err != nil {
			log.Err(err).Str("func", "indexMaintainer.Reindex").Msg("failed to count index rows")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Str("func", "indexMaintainer.Reindex").Int64("indexed", indexed).Msg("search index rebuilt")
	return indexed, nil
}

// VerifyIndex compares the notes table with the search index.
func (m *indexMaintainer) VerifyIndex(ctx context.Context) (models.IndexStatus, error) {
	log := logger.FromContext(ctx)

	var status models.IndexStatus
	err := m.db.WithConnection(ctx, "VerifyIndex", func(ctx context.Context, conn Conn) error {
		counts := []struct {
			query string
			dest  *int64
		}{
			{query: countNotes, dest: &status.Notes},
			{query: countIndexed, dest: &status.Indexed},
			{query: countMissingIndex, dest: &status.Missing},
			{query: countOrphanIndex, dest: &status.Orphaned},
		}

		for _, c := range counts {
			if err := conn.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
				log.Err(err).Str("func", "indexMaintainer.VerifyIndex").Msg("failed to count rows")
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
		}

		return nil
	})
	if err != nil {
		return models.IndexStatus{}, err
	}

	if !status.InSync() {
		log.Warn().
			Str("func", "indexMaintainer.VerifyIndex").
			Int64("missing", status.Missing).
			Int64("orphaned", status.Orphaned).
			Msg("search index out of sync")
	}

	return status, nil
}
