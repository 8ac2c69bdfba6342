// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

const (
	// EnvPrefix is prepended to every environment variable the application reads.
	EnvPrefix = "WEBNOTES_"

	// DefaultDBFileName is the name of the database file inside the data directory.
	DefaultDBFileName = "webnotes.db"

	// DefaultBusyTimeout is how long SQLite waits on a locked database file
	// before reporting SQLITE_BUSY.
	DefaultBusyTimeout = 5 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// InMemoryDBFileName keeps the database in memory instead of on disk.
	InMemoryDBFileName = ":memory:"

	appDirName = "webnotes"
)

// StructuredConfig is the top-level configuration container for the
// go-notes-keeper application. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Only the data directory and the JSON file path are read from the
// environment; everything else comes from flags or the JSON file.
type StructuredConfig struct {
	// App holds host-level settings.
	App App

	// Storage holds configuration for the embedded database.
	Storage Storage

	// Log holds logging settings.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the WEBNOTES_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds host-level settings.
type App struct {
	// DataDir is the application data directory that contains the database
	// file. The host creates it on startup.
	// Env: WEBNOTES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB
}

// DB holds settings for the embedded SQLite database.
type DB struct {
	// FileName is the database file name relative to App.DataDir,
	// or ":memory:" for a throwaway in-memory database.
	FileName string

	// BusyTimeout is passed to SQLite as busy_timeout.
	BusyTimeout time.Duration
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string

	// File is an optional log file path. When empty, logs go to stderr.
	File string
}

// DatabasePath returns the location of the database file: the data directory
// joined with the configured file name, or the in-memory marker unchanged.
func (cfg *StructuredConfig) DatabasePath() string {
	if cfg.Storage.DB.FileName == InMemoryDBFileName {
		return InMemoryDBFileName
	}

	return filepath.Join(cfg.App.DataDir, cfg.Storage.DB.FileName)
}

// Default returns the built-in configuration. The data directory defaults to
// "webnotes" under the user's configuration directory; it stays empty if that
// directory cannot be determined.
func Default() *StructuredConfig {
	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				FileName:    DefaultDBFileName,
				BusyTimeout: DefaultBusyTimeout,
			},
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}

	if dir, err := os.UserConfigDir(); err == nil {
		cfg.App.DataDir = filepath.Join(dir, appDirName)
	}

	return cfg
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. ".env" file and environment variables
//  3. Command-line flags registered with [RegisterFlags] on fs
//  4. JSON file (path resolved from sources 2 and 3)
//
// fs may be nil when no flags are available.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
