// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Conn is the statement surface handed to operations running inside
// [DB.WithConnection] or [DB.WithTransaction]. Both *sql.Conn and *sql.Tx
// satisfy it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is the store handle. It owns the single SQLite connection and
// serializes every operation on it.
type DB struct {
	*sql.DB
	mu                 sync.Mutex
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB wraps an opened *sql.DB, pinning its pool to one connection.
func newDB(conn *sql.DB, log *logger.Logger) *DB {
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

// WithConnection runs f with exclusive use of the connection. The lock and
// the connection are released on every exit path, including a panic in f.
//
// Errors from f that match ErrValidation, ErrNotFound, ErrIndexSync or
// ErrStorage are returned unchanged; anything else is wrapped into a
// [*StorageError] for op.
func (db *DB) WithConnection(ctx context.Context, op string, f func(ctx context.Context, conn Conn) error) error {
	return db.withConn(ctx, op, func(ctx context.Context, conn *sql.Conn) error {
		return f(ctx, conn)
	})
}

// WithTransaction is WithConnection with f running inside BEGIN/COMMIT.
// The transaction is rolled back when f fails.
func (db *DB) WithTransaction(ctx context.Context, op string, f func(ctx context.Context, tx Conn) error) error {
	return db.withConn(ctx, op, func(ctx context.Context, conn *sql.Conn) error {
		log := logger.FromContext(ctx)

		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "DB.WithTransaction").Str("op", op).Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err := f(ctx, tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			log.Err(err).Str("func", "DB.WithTransaction").Str("op", op).Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		return nil
	})
}

// WithLock runs f while holding the handle mutex without checking out the
// connection. f may use the embedded *sql.DB; it is the only user while the
// lock is held. Used for schema migrations.
func (db *DB) WithLock(ctx context.Context, op string, f func(ctx context.Context, sqlDB *sql.DB) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := f(ctx, db.DB); err != nil {
		return db.wrapError(op, err)
	}

	return nil
}

func (db *DB) withConn(ctx context.Context, op string, f func(ctx context.Context, conn *sql.Conn) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	conn, err := db.DB.Conn(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "DB.WithConnection").Str("op", op).Msg("failed to acquire connection")
		return db.wrapError(op, fmt.Errorf("%w: %w", ErrAcquiringConnection, err))
	}
	defer conn.Close()

	if err := f(ctx, conn); err != nil {
		return db.wrapError(op, err)
	}

	return nil
}

func (db *DB) wrapError(op string, err error) error {
	if isDomainError(err) {
		return err
	}

	return &StorageError{
		Op:    op,
		Class: db.errorClassificator.Classify(err),
		Err:   err,
	}
}

// Close closes the connection. It waits for an in-flight operation to finish.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.DB.Close(); err != nil {
		return db.wrapError("Close", err)
	}

	return nil
}
