// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	NotesService   NotesService
	AppInfoService AppInfoService
}

// NewServices builds the service set over storages. The notes service is
// wrapped with id validation.
func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	notes := NewNotesService(storages, logger)

	return &Services{
		NotesService:   NewNotesValidationService().Wrap(notes),
		AppInfoService: NewAppInfoService(buildInfo, storages.SchemaManager, logger),
	}
}
