// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo is the version report printed by the CLI.
type AppInfo struct {
	Version       string `json:"version"`
	BuildDate     string `json:"buildDate"`
	BuildCommit   string `json:"buildCommit"`
	SchemaVersion int64  `json:"schemaVersion"`
}
