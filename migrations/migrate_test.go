// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func columnsOf(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM pragma_table_info('" + table + "')")
	require.NoError(t, err)
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		cols = append(cols, name)
	}
	require.NoError(t, rows.Err())
	return cols
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself; every call is unexpected

	err = Migrate(context.Background(), db, logger.Nop())
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, logger.Nop())
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_FreshDatabase(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, Migrate(ctx, db, logger.Nop()))

	assert.ElementsMatch(t,
		[]string{"id", "title", "content", "folder_id", "is_pinned", "updated_at", "created_at", "pinned_at", "font"},
		columnsOf(t, db, "notes"))
	assert.ElementsMatch(t, []string{"id", "name", "created_at"}, columnsOf(t, db, "folders"))

	var indexes int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name IN ('idx_notes_folder_id', 'idx_notes_updated_at', 'idx_notes_is_pinned')`,
	).Scan(&indexes))
	assert.Equal(t, 3, indexes)

	_, err := db.Exec(`INSERT INTO notes_fts (id, title, content) VALUES ('n1', 'Shopping', 'milk')`)
	require.NoError(t, err)

	version, err := Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	for range 3 {
		require.NoError(t, Migrate(ctx, db, logger.Nop()))
	}

	assert.Len(t, columnsOf(t, db, "notes"), 9)
}

// TestMigrate_LegacyDatabaseWithColumns covers a database created before
// versioned migrations, whose notes table already has pinned_at and font.
func TestMigrate_LegacyDatabaseWithColumns(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.Exec(`CREATE TABLE notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		folder_id TEXT,
		is_pinned INTEGER DEFAULT 0,
		pinned_at TEXT,
		font TEXT,
		updated_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes (id, title, content, is_pinned, pinned_at, updated_at, created_at)
		VALUES ('n1', 'kept', 'body', 1, '2024-01-01T00:00:00.000Z', '2024-01-01T00:00:00.000Z', '2024-01-01T00:00:00.000Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db, logger.Nop()))
	require.NoError(t, Migrate(ctx, db, logger.Nop()))

	assert.Len(t, columnsOf(t, db, "notes"), 9)

	var title, pinnedAt string
	require.NoError(t, db.QueryRow(`SELECT title, pinned_at FROM notes WHERE id = 'n1'`).Scan(&title, &pinnedAt))
	assert.Equal(t, "kept", title)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", pinnedAt)
}

// TestMigrate_LegacyDatabaseWithoutColumns covers the first release schema,
// which lacked pinned_at and font.
func TestMigrate_LegacyDatabaseWithoutColumns(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.Exec(`CREATE TABLE notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		folder_id TEXT,
		is_pinned INTEGER DEFAULT 0,
		updated_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db, logger.Nop()))

	assert.Contains(t, columnsOf(t, db, "notes"), "pinned_at")
	assert.Contains(t, columnsOf(t, db, "notes"), "font")
}

func TestVersion_NilDB(t *testing.T) {
	_, err := Version(context.Background(), nil)
	assert.ErrorIs(t, err, errNilDB)
}
