// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrValidation is returned when input is rejected before storage is
	// touched (empty or oversized id).
	ErrValidation = validators.ErrValidation

	// ErrNotFound is returned when an operation requires an existing row
	// that is absent.
	ErrNotFound = errors.New("not found")

	// ErrStorage matches every [*StorageError].
	ErrStorage = errors.New("storage error")

	// ErrIndexSync matches every [*IndexSyncError].
	ErrIndexSync = errors.New("search index out of sync")
)

// Low-level failures wrapped inside a [*StorageError] to tell where an
// operation failed.
var (
	// ErrAcquiringConnection is returned when the physical connection cannot
	// be obtained from database/sql.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// StorageError reports an engine failure during a named operation.
type StorageError struct {
	// Op is the operation that failed, e.g. "SaveNote".
	Op string
	// Class tells whether retrying the operation may succeed.
	Class ErrorClassification
	// Err is the underlying cause.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s (%s): %v", e.Op, e.Class, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match [ErrStorage].
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Retryable reports whether the failure was transient (busy or locked database).
func (e *StorageError) Retryable() bool {
	return e.Class == Retryable
}

// IndexSyncError reports that a note's primary row was written but its
// search-index row was not.
type IndexSyncError struct {
	NoteID string
	Err    error
}

func (e *IndexSyncError) Error() string {
	return fmt.Sprintf("search index sync failed for note %s: %v", e.NoteID, e.Err)
}

func (e *IndexSyncError) Unwrap() error {
	return e.Err
}

// Is makes every IndexSyncError match [ErrIndexSync].
func (e *IndexSyncError) Is(target error) bool {
	return target == ErrIndexSync
}

// isDomainError reports whether err must pass through the store handle
// unchanged.
func isDomainError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrIndexSync) ||
		errors.Is(err, ErrStorage)
}
