// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a builder without any
// source produces a config that is rejected by validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverridesEarlier verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterConfigOverridesEarlier(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{DataDir: "/data"},
		Storage: Storage{DB: DB{BusyTimeout: 2 * time.Second}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.App.DataDir)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.BusyTimeout)
	assert.Equal(t, DefaultDBFileName, cfg.Storage.DB.FileName)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaultConfig(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultDBFileName, b.configs[0].Storage.DB.FileName)
	assert.Equal(t, DefaultBusyTimeout, b.configs[0].Storage.DB.BusyTimeout)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilFlagSetIsSkipped(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UnregisteredFlagsSetError(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	b := newConfigBuilder().withFlags(fs)
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSkipsJSON verifies that no config is appended when no
// source specified a JSON path.
func TestWithJSON_NoPathSkipsJSON(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the JSON path from the last source
// that set one is used.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"data_dir": "/first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"data_dir": "/second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "/second", b.configs[2].App.DataDir)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})
	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies defaults < env < flags < JSON.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"log": map[string]any{"level": "warn"},
	})
	t.Setenv("WEBNOTES_DATA_DIR", "/from-env")

	fs := newTestFlagSet(t,
		"--db-file", "notes.db",
		"--log-level", "debug",
		"--config", jsonPath,
	)

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "/from-env", cfg.App.DataDir)
	assert.Equal(t, "notes.db", cfg.Storage.DB.FileName)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DefaultBusyTimeout, cfg.Storage.DB.BusyTimeout)
	assert.Equal(t, filepath.Join("/from-env", "notes.db"), cfg.DatabasePath())
}

func TestGetStructuredConfig_FlagOverridesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WEBNOTES_DATA_DIR", "/from-env")

	cfg, err := GetStructuredConfig(newTestFlagSet(t, "--data-dir", "/from-flag"))
	require.NoError(t, err)
	assert.Equal(t, "/from-flag", cfg.App.DataDir)
}

func TestGetStructuredConfig_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WEBNOTES_DATA_DIR=/from-dotenv\n"), 0o600))
	// registered with t.Setenv so that the value loaded from .env is restored afterwards
	t.Setenv("WEBNOTES_DATA_DIR", "")
	require.NoError(t, os.Unsetenv("WEBNOTES_DATA_DIR"))

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/from-dotenv", cfg.App.DataDir)
}

func TestGetStructuredConfig_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig(newTestFlagSet(t, "--data-dir", "/data", "--log-level", "loud"))
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}
