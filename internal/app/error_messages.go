// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgInvalidID is reported when a note or folder id is empty or longer
	// than 100 characters.
	MsgInvalidID = "invalid id"

	// MsgInvalidInput is reported when command input cannot be decoded.
	MsgInvalidInput = "invalid input"

	// MsgNoteNotFound is reported when the requested note does not exist.
	MsgNoteNotFound = "note not found"

	// MsgIndexOutOfSync is reported when a note was saved but its search
	// index row could not be written. Running "reindex" repairs it.
	MsgIndexOutOfSync = "search index is out of sync, run reindex"

	// MsgDatabaseBusy is reported for retryable storage failures such as
	// SQLITE_BUSY.
	MsgDatabaseBusy = "database is busy, try again"

	// MsgStorageFailure is reported for any other storage failure.
	MsgStorageFailure = "storage failure"

	// MsgSchemaInitialization is reported when the schema cannot be brought
	// up to date on startup.
	MsgSchemaInitialization = "database initialization failed"

	// MsgInvalidConfig is reported when the configuration fails validation.
	MsgInvalidConfig = "invalid configuration"

	// MsgInternalError is reported for anything else.
	MsgInternalError = "internal error"
)
