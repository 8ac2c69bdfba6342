// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Role is the logger role of the host process.
const Role = "webnotes"

// App is an opened go-notes-keeper runtime. Close must be called once the
// host is done with it.
type App struct {
	Services *service.Services
	Logger   *logger.Logger

	db      *store.DB
	logFile io.Closer
}

// New opens the runtime described by cfg. Logs go to stderr unless cfg names
// a log file.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo) (*App, error) {
	return NewWithLogWriter(ctx, cfg, buildInfo, os.Stderr)
}

// NewWithLogWriter is New with an explicit fallback log destination.
func NewWithLogWriter(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logWriter io.Writer) (*App, error) {
	a := &App{}

	if cfg.Log.File != "" {
		log, closer, err := logger.NewFileLogger(Role, cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("error creating logger: %w", err)
		}
		a.Logger, a.logFile = log, closer
	} else {
		a.Logger = logger.NewLogger(Role, logWriter, cfg.Log.Level)
	}

	if err := ensureDataDir(cfg); err != nil {
		a.Logger.Err(err).Str("func", "app.New").Str("data_dir", cfg.App.DataDir).Msg("error creating data directory")
		a.Close()
		return nil, err
	}

	db, err := store.NewConnectSQLite(ctx, cfg, a.Logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	a.db = db

	storages := store.NewStorages(db, utils.SystemClock{}, a.Logger)
	a.Services = service.NewServices(storages, buildInfo, a.Logger)

	if err = a.Services.NotesService.Initialize(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.Logger.Debug().Str("func", "app.New").Str("path", cfg.DatabasePath()).Msg("application started")
	return a, nil
}

// Close releases the database and the log file.
func (a *App) Close() error {
	var errs []error

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing database: %w", err))
		}
		a.db = nil
	}

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing log file: %w", err))
		}
		a.logFile = nil
	}

	return errors.Join(errs...)
}

func ensureDataDir(cfg *config.StructuredConfig) error {
	if cfg.Storage.DB.FileName == config.InMemoryDBFileName {
		return nil
	}

	if err := os.MkdirAll(cfg.App.DataDir, 0o755); err != nil {
		return fmt.Errorf("error creating data directory %s: %w", cfg.App.DataDir, err)
	}

	return nil
}
