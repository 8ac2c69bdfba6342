// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// gooseLogger routes goose output into the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func newGooseLogger(log *logger.Logger) *gooseLogger {
	if log == nil {
		log = logger.Nop()
	}

	return &gooseLogger{log: log}
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Debug().Str("func", "migrations.Migrate").Msgf(strings.TrimSpace(format), v...)
}

// Fatalf logs at error level; goose reports the failure through its return
// value as well, so the process is not terminated here.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("func", "migrations.Migrate").Msgf(strings.TrimSpace(format), v...)
}
