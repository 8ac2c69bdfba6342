// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// searchLimit caps the number of notes returned by a full-text search.
const searchLimit = 50

// searchColumns restricts MATCH to the searchable columns of notes_fts. The
// id column is stored in the index only to join back to notes.
const searchColumns = "{title content}"

var noteColumns = []string{
	"id",
	"title",
	"content",
	"folder_id",
	"is_pinned",
	"pinned_at",
	"font",
	"updated_at",
	"created_at",
}

const notesOrder = "is_pinned DESC, pinned_at DESC, updated_at DESC"

const (
	upsertNote = `INSERT INTO notes (id, title, content, folder_id, is_pinned, pinned_at, font, updated_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			folder_id = excluded.folder_id,
			is_pinned = excluded.is_pinned,
			pinned_at = excluded.pinned_at,
			font = excluded.font,
			updated_at = excluded.updated_at;`

	getNote = `SELECT id, title, content, folder_id, is_pinned, pinned_at, font, updated_at, created_at
		FROM notes
		WHERE id = ?;`

	deleteNote = `DELETE FROM notes WHERE id = ?;`

	updateNotePin = `UPDATE notes SET is_pinned = ?, pinned_at = ?, updated_at = ? WHERE id = ?;`

	// FTS5 tables do not support UPSERT, so the index row is replaced.
	deleteNoteIndex = `DELETE FROM notes_fts WHERE id = ?;`
	insertNoteIndex = `INSERT INTO notes_fts (id, title, content) VALUES (?, ?, ?);`

	upsertFolder = `INSERT INTO folders (id, name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name;`

	getAllFolders = `SELECT id, name, created_at
		FROM folders
		ORDER BY created_at DESC;`

	unfileFolderNotes = `UPDATE notes SET folder_id = NULL WHERE folder_id = ?;`
	deleteFolder      = `DELETE FROM folders WHERE id = ?;`

	clearNoteIndex   = `DELETE FROM notes_fts;`
	rebuildNoteIndex = `INSERT INTO notes_fts (id, title, content) SELECT id, title, content FROM notes;`

	countNotes        = `SELECT COUNT(*) FROM notes;`
	countIndexed      = `SELECT COUNT(*) FROM notes_fts;`
	countMissingIndex = `SELECT COUNT(*) FROM notes n WHERE NOT EXISTS (SELECT 1 FROM notes_fts f WHERE f.id = n.id);`
	countOrphanIndex  = `SELECT COUNT(*) FROM notes_fts f WHERE NOT EXISTS (SELECT 1 FROM notes n WHERE n.id = f.id);`
)

// buildSelectNotesQuery lists notes in display order. A nil folderID selects
// every note; a pointer to "" selects unfiled notes.
func buildSelectNotesQuery(ctx context.Context, folderID *string) (string, []any, error) {
	builder := sq.Select(noteColumns...).
		From("notes").
		OrderBy(notesOrder)

	if folderID != nil {
		if *folderID == "" {
			builder = builder.Where(sq.Eq{"folder_id": nil})
		} else {
			builder = builder.Where(sq.Eq{"folder_id": *folderID})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSearchNotesQuery joins notes with the FTS5 index and orders matches by
// relevance. match must already be a sanitized FTS5 phrase; it is scoped to
// searchColumns here.
func buildSearchNotesQuery(ctx context.Context, match string) (string, []any, error) {
	columns := make([]string, 0, len(noteColumns))
	for _, c := range noteColumns {
		columns = append(columns, "n."+c)
	}

	query, args, err := sq.Select(columns...).
		From("notes n").
		Join("notes_fts f ON n.id = f.id").
		Where("notes_fts MATCH ?", searchColumns+" : "+match).
		OrderBy("rank").
		Limit(searchLimit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
