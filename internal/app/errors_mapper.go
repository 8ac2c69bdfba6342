// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// Process exit codes.
const (
	ExitOK = iota
	ExitFailure
	ExitInvalidInput
	ExitNotFound
	ExitBusy
	ExitIndexOutOfSync
)

type errorReport struct {
	target  error
	message string
	code    int
}

// errorReports is checked in order; the first match wins. Specific errors
// come before the broader ones they wrap.
var errorReports = []errorReport{
	{target: store.ErrValidation, message: MsgInvalidID, code: ExitInvalidInput},
	{target: ErrInvalidInput, message: MsgInvalidInput, code: ExitInvalidInput},
	{target: store.ErrNotFound, message: MsgNoteNotFound, code: ExitNotFound},
	{target: store.ErrIndexSync, message: MsgIndexOutOfSync, code: ExitIndexOutOfSync},
	{target: ErrIndexOutOfSync, message: MsgIndexOutOfSync, code: ExitIndexOutOfSync},
	{target: service.ErrSchemaInitialization, message: MsgSchemaInitialization, code: ExitFailure},
	{target: config.ErrInvalidStorageConfigs, message: MsgInvalidConfig, code: ExitInvalidInput},
	{target: config.ErrInvalidLogConfigs, message: MsgInvalidConfig, code: ExitInvalidInput},
}

// MessageFromError returns the user-facing message for err.
func MessageFromError(err error) string {
	msg, _ := report(err)
	return msg
}

// ExitCodeFromError returns the process exit code for err. A nil error maps
// to ExitOK.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitOK
	}
	_, code := report(err)
	return code
}

func report(err error) (string, int) {
	for _, r := range errorReports {
		if errors.Is(err, r.target) {
			return r.message, r.code
		}
	}

	var storageErr *store.StorageError
	if errors.As(err, &storageErr) {
		if storageErr.Retryable() {
			return MsgDatabaseBusy, ExitBusy
		}
		return MsgStorageFailure, ExitFailure
	}

	return MsgInternalError, ExitFailure
}
