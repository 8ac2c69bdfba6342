// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagDataDir     = "data-dir"
	FlagDBFile      = "db-file"
	FlagBusyTimeout = "busy-timeout"
	FlagLogLevel    = "log-level"
	FlagLogFile     = "log-file"
	FlagConfig      = "config"
)

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	--data-dir      application data directory
//	--db-file       database file name inside the data directory (":memory:" for in-memory)
//	--busy-timeout  SQLite busy timeout (e.g. "5s")
//	--log-level     minimum log level (debug, info, warn, error)
//	--log-file      log file path (stderr when empty)
//	-c/--config     json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagDataDir, "", "Application data directory")
	fs.String(FlagDBFile, "", "Database file name inside the data directory")
	fs.Duration(FlagBusyTimeout, 0, "SQLite busy timeout (e.g. 5s)")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Log file path")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// parseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Unset flags keep their zero value and therefore never override
// other sources during merging.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	dataDir, err := fs.GetString(FlagDataDir)
	if err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", FlagDataDir, err)
	}
	dbFile, err := fs.GetString(FlagDBFile)
	if err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", FlagDBFile, err)
	}
	busyTimeout, err := fs.GetDuration(FlagBusyTimeout)
	if err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", FlagBusyTimeout, err)
	}
	logLevel, err := fs.GetString(FlagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", FlagLogLevel, err)
	}
	logFile, err := fs.GetString(FlagLogFile)
	if err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", FlagLogFile, err)
	}
	jsonConfigPath, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", FlagConfig, err)
	}

	return &StructuredConfig{
		App: App{
			DataDir: dataDir,
		},
		Storage: Storage{
			DB: DB{
				FileName:    dbFile,
				BusyTimeout: busyTimeout,
			},
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
