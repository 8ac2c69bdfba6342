// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder groups notes. Deleting a folder unfiles its notes instead of
// deleting them.
type Folder struct {
	// ID is the unique identifier of the folder (at most 100 characters).
	ID string `json:"id" validate:"required,max=100"`

	// Name is the display name of the folder.
	Name string `json:"name"`

	// CreatedAt is the creation time. It is never changed after the first save.
	CreatedAt string `json:"createdAt"`
}
