// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildSelectNotesQuery(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		folderID   *string
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "all notes",
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "from notes")
				require.NotContains(t, q, "where")
				require.Contains(t, q, "order by is_pinned desc, pinned_at desc, updated_at desc")
				require.Empty(t, args)
			},
		},
		{
			name:     "unfiled notes",
			folderID: ptr(""),
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, strings.ToLower(query), "where folder_id is null")
				require.Empty(t, args)
			},
		},
		{
			name:     "one folder",
			folderID: ptr("work"),
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, strings.ToLower(query), "where folder_id = ?")
				require.Equal(t, []any{"work"}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectNotesQuery(ctx, tt.folderID)
			require.NoError(t, err)

			// every listing selects the full note row
			for _, c := range noteColumns {
				require.Contains(t, query, c)
			}
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildSearchNotesQuery(t *testing.T) {
	query, args, err := buildSearchNotesQuery(context.Background(), `"milk"*`)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from notes n")
	require.Contains(t, q, "join notes_fts f on n.id = f.id")
	require.Contains(t, q, "where notes_fts match ?")
	require.Contains(t, q, "order by rank")
	require.Contains(t, q, "limit 50")
	require.Contains(t, q, "n.updated_at")
	require.Equal(t, []any{`{title content} : "milk"*`}, args)
}
