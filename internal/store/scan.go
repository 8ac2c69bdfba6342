// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one row laid out as noteColumns.
func scanNote(row rowScanner) (models.Note, error) {
	var (
		note     models.Note
		isPinned sql.NullBool
	)

	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.FolderID,
		&isPinned,
		&note.PinnedAt,
		&note.Font,
		&note.UpdatedAt,
		&note.CreatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}
	note.IsPinned = isPinned.Valid && isPinned.Bool

	return note, nil
}

// scanNotes drains rows. The result is never nil.
func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	notes := make([]models.Note, 0)

	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
