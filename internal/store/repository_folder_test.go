// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFolder_UpsertOverwritesNameOnly(t *testing.T) {
	s, _ := newTestStorages(t, utils.FixedClock{T: testTime})
	ctx := context.Background()
	repo := s.FolderRepository

	require.NoError(t, repo.SaveFolder(ctx, models.Folder{ID: "f1", Name: "Work"}))
	require.NoError(t, repo.SaveFolder(ctx, models.Folder{ID: "f1", Name: "Office", CreatedAt: "2030-01-01T00:00:00.000Z"}))

	folders, err := repo.GetAllFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, models.Folder{ID: "f1", Name: "Office", CreatedAt: utils.FormatTimestamp(testTime)}, folders[0])
}

func TestSaveFolder_Validation(t *testing.T) {
	repo, mock := newMockFolderRepo(t)

	assert.ErrorIs(t, repo.SaveFolder(context.Background(), models.Folder{Name: "no id"}), ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllFolders_NewestFirst(t *testing.T) {
	s, _ := newTestStorages(t, newStepClock())
	ctx := context.Background()
	repo := s.FolderRepository

	require.NoError(t, repo.SaveFolder(ctx, models.Folder{ID: "older", Name: "a"}))
	require.NoError(t, repo.SaveFolder(ctx, models.Folder{ID: "newer", Name: "b"}))

	folders, err := repo.GetAllFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "newer", folders[0].ID)
	assert.Equal(t, "older", folders[1].ID)
}

func TestGetAllFolders_Empty(t *testing.T) {
	s, _ := newTestStorages(t, utils.SystemClock{})

	folders, err := s.FolderRepository.GetAllFolders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, folders)
	assert.Empty(t, folders)
}

func TestDeleteFolder_UnfilesNotes(t *testing.T) {
	s, _ := newTestStorages(t, newStepClock())
	ctx := context.Background()

	require.NoError(t, s.FolderRepository.SaveFolder(ctx, models.Folder{ID: "f", Name: "Trip"}))
	require.NoError(t, s.NoteRepository.SaveNote(ctx, models.Note{ID: "n1", FolderID: ptr("f")}))
	require.NoError(t, s.NoteRepository.SaveNote(ctx, models.Note{ID: "n2", FolderID: ptr("f")}))
	require.NoError(t, s.NoteRepository.SaveNote(ctx, models.Note{ID: "n3", FolderID: ptr("other")}))

	require.NoError(t, s.FolderRepository.DeleteFolder(ctx, "f"))

	notes, err := s.NoteRepository.GetAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	for _, n := range notes {
		switch n.ID {
		case "n1", "n2":
			assert.Nil(t, n.FolderID, n.ID)
		case "n3":
			assert.Equal(t, ptr("other"), n.FolderID)
		}
	}

	folders, err := s.FolderRepository.GetAllFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestDeleteFolder_UnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStorages(t, utils.SystemClock{})

	assert.NoError(t, s.FolderRepository.DeleteFolder(context.Background(), "nope"))
}

func TestDeleteFolder_EmptyID(t *testing.T) {
	repo, mock := newMockFolderRepo(t)

	assert.ErrorIs(t, repo.DeleteFolder(context.Background(), ""), ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFolder_RollsBackWhenDeleteFails(t *testing.T) {
	repo, mock := newMockFolderRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE notes SET folder_id = NULL`).WithArgs("f").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM folders`).WithArgs("f").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.DeleteFolder(context.Background(), "f")
	assert.ErrorIs(t, err, ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
