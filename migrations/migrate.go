// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations owns the database schema. SQL migrations are embedded
// into the binary; column additions that must tolerate databases created by
// older releases are registered as Go migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// VersionTable is the table goose records applied migrations in.
const VersionTable = "goose_db_version"

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration. Running it against an up-to-date
// database is a no-op.
func Migrate(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName(VersionTable)
	goose.SetLogger(newGooseLogger(log))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version reports the latest applied migration version.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errNilDB
	}

	goose.SetTableName(VersionTable)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, fmt.Errorf("error setting dialect for db: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("error reading schema version: %w", err)
	}

	return version, nil
}
