// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

var (
	// ErrInvalidInput marks command input that cannot be decoded.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoteNotFound is the host's report of an absent note.
	ErrNoteNotFound = fmt.Errorf("%w: note", store.ErrNotFound)

	// ErrIndexOutOfSync is returned by the doctor check when the search index
	// has drifted from the notes table.
	ErrIndexOutOfSync = errors.New("search index is out of sync")
)
