// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty data directory or database file name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown log level).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
