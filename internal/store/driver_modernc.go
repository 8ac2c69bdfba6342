// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !sqlite_fts5

package store

import (
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// dsn builds a modernc DSN for path with the busy timeout applied as a pragma.
func dsn(path string, busyTimeout time.Duration) string {
	if path == inMemoryPath {
		return path
	}

	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, busyTimeout.Milliseconds())
}

// resultCode extracts the (possibly extended) SQLite result code from err.
func resultCode(err error) (int, bool) {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code(), true
	}

	return 0, false
}
