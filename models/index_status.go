// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IndexStatus describes how far the full-text search index has drifted from
// the notes table.
type IndexStatus struct {
	// Notes is the number of rows in the notes table.
	Notes int64 `json:"notes"`

	// Indexed is the number of rows in the search index.
	Indexed int64 `json:"indexed"`

	// Missing is the number of notes without a search index row.
	Missing int64 `json:"missing"`

	// Orphaned is the number of search index rows without a note.
	Orphaned int64 `json:"orphaned"`
}

// InSync reports whether every note is indexed exactly once and the index
// holds nothing else.
func (s IndexStatus) InSync() bool {
	return s.Missing == 0 && s.Orphaned == 0 && s.Notes == s.Indexed
}
