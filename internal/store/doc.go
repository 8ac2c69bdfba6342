// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of go-notes-keeper.
//
// Everything runs over one SQLite connection owned by [DB]. Repositories and
// the search engine never touch the connection directly: every operation goes
// through [DB.WithConnection] or [DB.WithTransaction], which serialize access
// with a mutex and translate engine failures into [*StorageError].
//
// Notes are mirrored into the FTS5 table notes_fts. The mirror is written
// after the primary row and is best effort: a failed index write surfaces as
// [*IndexSyncError] from SaveNote and can be repaired with Reindex.
//
// The SQLite driver is selected at build time. The default is the pure Go
// modernc.org/sqlite; building with -tags sqlite_fts5 switches to the cgo
// driver github.com/mattn/go-sqlite3 with FTS5 compiled in.
package store
