// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type searchEngine struct {
	db     *DB
	logger *logger.Logger
}

// NewSearchEngine constructs a [SearchEngine] backed by db.
func NewSearchEngine(db *DB, logger *logger.Logger) SearchEngine {
	logger.Debug().Msg("creating search engine")
	return &searchEngine{
		db:     db,
		logger: logger,
	}
}

// SearchNotes returns up to 50 notes whose title or content contain a
// token sequence starting with the sanitized query, most relevant first.
// Note ids are never matched.
// Queries with nothing searchable return an empty result without touching
// the database.
func (s *searchEngine) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	match := SanitizeFTSQuery(query)
	if match == "" {
		return []models.Note{}, nil
	}

	sqlQuery, args, err := buildSearchNotesQuery(ctx, match)
	if err != nil {
		log.Err(err).Str("func", "searchEngine.SearchNotes").Msg("failed to build query")
		return nil, &StorageError{Op: "SearchNotes", Class: NonRetryable, Err: err}
	}

	var notes []models.Note
	err = s.db.WithConnection(ctx, "SearchNotes", func(ctx context.Context, conn Conn) error {
		rows, err := conn.QueryContext(ctx, sqlQuery, args...)
		if err != nil {
			log.Err(err).
				Str("func", "searchEngine.SearchNotes").
				Str("match", match).
				Msg("failed to run search")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		notes, err = scanNotes(rows)
		if err != nil {
			log.Err(err).Str("func", "searchEngine.SearchNotes").Msg("failed to scan search results")
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("func", "searchEngine.SearchNotes").
		Str("match", match).
		Int("results", len(notes)).
		Msg("search finished")
	return notes, nil
}

// SanitizeFTSQuery turns free text into a single FTS5 prefix phrase.
// Every rune that is not a letter, number, combining mark or whitespace is
// dropped and whitespace runs collapse to one space, so the result never
// contains FTS5 operators or quotes. Combining marks stay so scripts such as
// Devanagari tokenize the same way in the query as in the indexed text.
// It returns "" when nothing searchable is left.
//
//	SanitizeFTSQuery(`milk "eggs" -bread`) == `"milk eggs bread"*`
func SanitizeFTSQuery(query string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.In(r, unicode.Mn, unicode.Mc) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, query)

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return ""
	}

	return `"` + cleaned + `"*`
}
