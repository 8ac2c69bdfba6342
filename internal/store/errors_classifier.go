// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or
// abandoned. Nothing in this package retries on its own.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations and syntax errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (the database file was busy or a table was locked).
	Retryable
)

func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	default:
		return "non-retryable"
	}
}

// Primary SQLite result codes the classifier cares about.
// See https://www.sqlite.org/rescode.html.
const (
	sqliteBusy   = 5
	sqliteLocked = 6
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite. It reads
// the result code from whichever driver the binary was built with.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Retryable codes:
//   - SQLITE_BUSY (5), including extended codes such as SQLITE_BUSY_SNAPSHOT
//   - SQLITE_LOCKED (6), including SQLITE_LOCKED_SHAREDCACHE
//
// Context deadline errors are NonRetryable: the caller gave up.
// Any other error is classified as [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NonRetryable
	}

	code, ok := resultCode(err)
	if !ok {
		return NonRetryable
	}

	switch code & 0xff {
	case sqliteBusy, sqliteLocked:
		return Retryable
	}

	return NonRetryable
}
