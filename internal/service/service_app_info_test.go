// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetAppInfo_ReportsBuildAndSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	schema := mock.NewMockSchemaManager(ctrl)
	schema.EXPECT().Version(gomock.Any()).Return(int64(2), nil)

	svc := NewAppInfoService(models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123"), schema, logger.Nop())

	info, err := svc.GetAppInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AppInfo{
		Version:       "v1.2.3",
		BuildDate:     "2026-01-01",
		BuildCommit:   "abc123",
		SchemaVersion: 2,
	}, info)
}

func TestGetAppInfo_MissingBuildValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	schema := mock.NewMockSchemaManager(ctrl)
	schema.EXPECT().Version(gomock.Any()).Return(int64(0), nil)

	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), schema, logger.Nop())

	info, err := svc.GetAppInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.BuildDate)
	assert.Equal(t, "N/A", info.BuildCommit)
}

func TestGetAppInfo_SchemaVersionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	schema := mock.NewMockSchemaManager(ctrl)
	cause := errors.New("no such table: goose_db_version")
	schema.EXPECT().Version(gomock.Any()).Return(int64(0), cause)

	svc := NewAppInfoService(models.NewAppBuildInfo("v1", "", ""), schema, logger.Nop())

	_, err := svc.GetAppInfo(context.Background())

	assert.ErrorIs(t, err, ErrSchemaVersion)
	assert.ErrorIs(t, err, cause)
}
