// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const inMemoryPath = config.InMemoryDBFileName

// ErrDataDirNotFound is returned when the directory that should contain the
// database file does not exist. Creating it is the host's job.
var ErrDataDirNotFound = errors.New("database directory does not exist")

// NewConnectSQLite opens the database file configured in cfg and verifies the
// connection with a ping. The containing directory must already exist.
func NewConnectSQLite(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*DB, error) {
	path := cfg.DatabasePath()

	if path != inMemoryPath {
		if err := checkParentDir(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error checking database directory")
			return nil, err
		}
	}

	conn, err := sql.Open(driverName, dsn(path, cfg.Storage.DB.BusyTimeout))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error opening database")
		return nil, fmt.Errorf("error opening database at %s: %w", path, err)
	}

	db := newDB(conn, log)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error opening database at %s: %w", path, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Str("driver", driverName).Msg("connected to database successfully")

	return db, nil
}

// OpenInMemory opens a private in-memory database. Mostly useful in tests.
func OpenInMemory(ctx context.Context, log *logger.Logger) (*DB, error) {
	cfg := &config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{FileName: inMemoryPath, BusyTimeout: time.Second}},
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func checkParentDir(path string) error {
	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDataDirNotFound, dir)
		}
		return fmt.Errorf("error checking database directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDataDirNotFound, dir)
	}

	return nil
}
