// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddNamedMigrationContext("00002_add_pin_and_font_columns.go", upAddPinAndFontColumns, downAddPinAndFontColumns)
}

// noteColumns are added to notes only when missing. Databases created by
// older releases may already carry some of them.
var noteColumns = []struct {
	name       string
	definition string
}{
	{name: "pinned_at", definition: "TEXT"},
	{name: "font", definition: "TEXT"},
}

func upAddPinAndFontColumns(ctx context.Context, tx *sql.Tx) error {
	existing, err := tableColumns(ctx, tx, "notes")
	if err != nil {
		return err
	}

	for _, col := range noteColumns {
		if _, ok := existing[col.name]; ok {
			continue
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE notes ADD COLUMN %s %s", col.name, col.definition)); err != nil {
			return fmt.Errorf("error adding column notes.%s: %w", col.name, err)
		}
	}

	return nil
}

func downAddPinAndFontColumns(ctx context.Context, tx *sql.Tx) error {
	for _, col := range noteColumns {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE notes DROP COLUMN %s", col.name)); err != nil {
			return fmt.Errorf("error dropping column notes.%s: %w", col.name, err)
		}
	}

	return nil
}

// tableColumns returns the column names of table as reported by PRAGMA table_info.
func tableColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]struct{}, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("error reading columns of %s: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("error scanning columns of %s: %w", table, err)
		}
		columns[name] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns of %s: %w", table, err)
	}

	return columns, nil
}
