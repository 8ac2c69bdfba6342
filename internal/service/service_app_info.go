// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	schema    store.SchemaManager

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, schema store.SchemaManager, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		schema:    schema,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) (models.AppInfo, error) {
	version, err := s.schema.Version(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "appInfoService.GetAppInfo").Msg("cannot read schema version")
		return models.AppInfo{}, fmt.Errorf("%w: %w", ErrSchemaVersion, err)
	}

	return models.AppInfo{
		Version:       s.buildInfo.BuildVersion(),
		BuildDate:     s.buildInfo.BuildDate(),
		BuildCommit:   s.buildInfo.BuildCommit(),
		SchemaVersion: version,
	}, nil
}
