// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

type schemaManager struct {
	db     *DB
	logger *logger.Logger
}

// NewSchemaManager constructs a [SchemaManager] for db.
func NewSchemaManager(db *DB, logger *logger.Logger) SchemaManager {
	return &schemaManager{
		db:     db,
		logger: logger,
	}
}

// Initialize applies pending migrations under the handle lock. goose works on
// the pool directly, so the connection is not checked out while it runs.
func (s *schemaManager) Initialize(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := s.db.WithLock(ctx, "Initialize", func(ctx context.Context, sqlDB *sql.DB) error {
		return migrations.Migrate(ctx, sqlDB, log)
	})
	if err != nil {
		log.Err(err).Str("func", "schemaManager.Initialize").Msg("database initialization failed")
		return err
	}

	log.Info().Str("func", "schemaManager.Initialize").Msg("database initialized")
	return nil
}

func (s *schemaManager) Version(ctx context.Context) (int64, error) {
	var version int64
	err := s.db.WithLock(ctx, "Version", func(ctx context.Context, sqlDB *sql.DB) error {
		v, err := migrations.Version(ctx, sqlDB)
		if err != nil {
			return err
		}
		version = v
		return nil
	})
	if err != nil {
		return 0, err
	}

	return version, nil
}
