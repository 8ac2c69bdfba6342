// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// stepClock advances by one millisecond on every call.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: testTime}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		App: config.App{DataDir: t.TempDir()},
		Storage: config.Storage{DB: config.DB{
			FileName:    "test.db",
			BusyTimeout: time.Second,
		}},
	}
}

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestStorages(t *testing.T, clock utils.Clock) (*Storages, *DB) {
	t.Helper()
	db := newTestDB(t)
	s := NewStorages(db, clock, logger.Nop())
	require.NoError(t, s.SchemaManager.Initialize(context.Background()))
	return s, db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return newDB(sqlDB, logger.Nop()), mock
}

func newMockNoteRepo(t *testing.T) (NoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewNoteRepository(db, validators.NewNoteValidator(), utils.FixedClock{T: testTime}, logger.Nop()), mock
}

func newMockFolderRepo(t *testing.T) (FolderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewFolderRepository(db, validators.NewNoteValidator(), utils.FixedClock{T: testTime}, logger.Nop()), mock
}

func ptr[T any](v T) *T {
	return &v
}

func countRows(t *testing.T, db *DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.WithConnection(context.Background(), "test", func(ctx context.Context, conn Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(&n)
	}))
	return n
}

func execRaw(t *testing.T, db *DB, query string, args ...any) sql.Result {
	t.Helper()
	var res sql.Result
	require.NoError(t, db.WithConnection(context.Background(), "test", func(ctx context.Context, conn Conn) error {
		var err error
		res, err = conn.ExecContext(ctx, query, args...)
		return err
	}))
	return res
}
