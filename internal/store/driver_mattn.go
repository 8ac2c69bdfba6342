// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build sqlite_fts5

package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// driverName is the database/sql driver registered by mattn/go-sqlite3.
const driverName = "sqlite3"

// dsn builds a go-sqlite3 DSN for path with the busy timeout in milliseconds.
func dsn(path string, busyTimeout time.Duration) string {
	if path == inMemoryPath {
		return path
	}

	return fmt.Sprintf("file:%s?_busy_timeout=%d", path, busyTimeout.Milliseconds())
}

// resultCode extracts the SQLite result code from err.
func resultCode(err error) (int, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return int(sqliteErr.ExtendedCode), true
	}

	return 0, false
}
