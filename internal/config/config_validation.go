// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.FileName == "" {
		return fmt.Errorf("%w: database file name is empty", ErrInvalidStorageConfigs)
	}

	if cfg.App.DataDir == "" && cfg.Storage.DB.FileName != InMemoryDBFileName {
		return fmt.Errorf("%w: data directory is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.BusyTimeout < 0 {
		return fmt.Errorf("%w: busy timeout is negative", ErrInvalidStorageConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
