// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single user note as stored in the "notes" table and mirrored
// (id, title, content) into the "notes_fts" search index.
//
// Timestamps are ISO-8601 strings. The web client produces them in
// millisecond precision UTC, and the server uses the same layout, so rows can
// be ordered by plain string comparison.
type Note struct {
	// ID is the externally generated identifier of the note (at most 100 characters).
	ID string `json:"id" validate:"required,max=100"`

	// Title is the note headline. Empty by default.
	Title string `json:"title"`

	// Content is the note body. Empty by default.
	Content string `json:"content"`

	// FolderID references the folder the note is filed in.
	// A nil value means the note is unfiled.
	FolderID *string `json:"folderId"`

	// IsPinned marks the note as pinned to the top of the list.
	IsPinned bool `json:"isPinned"`

	// PinnedAt is the moment the note was pinned. It is non-nil if and only
	// if IsPinned is true.
	PinnedAt *string `json:"pinnedAt"`

	// Font is the optional display font chosen for the note.
	Font *string `json:"font"`

	// UpdatedAt is the last modification time.
	UpdatedAt string `json:"updatedAt"`

	// CreatedAt is the creation time. It is never changed after the first save.
	CreatedAt string `json:"createdAt"`
}

// IsUnfiled reports whether the note does not belong to any folder.
func (n Note) IsUnfiled() bool {
	return n.FolderID == nil
}
