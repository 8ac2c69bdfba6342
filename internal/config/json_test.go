// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"data_dir": "/data"},
		"storage": map[string]any{
			"db": map[string]any{"file_name": "notes.db", "busy_timeout": "3s"},
		},
		"log": map[string]any{"level": "error", "file": "/tmp/app.log"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.App.DataDir)
	assert.Equal(t, "notes.db", cfg.Storage.DB.FileName)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.BusyTimeout)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/app.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDurationIsNanoseconds(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"busy_timeout": 1000}},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Microsecond, cfg.Storage.DB.BusyTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"busy_timeout": "forever"}},
	})

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
