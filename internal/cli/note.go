// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

type deletedOutput struct {
	Deleted string `json:"deleted"`
}

func (c *cli) noteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		c.noteSaveCommand(),
		c.noteNewCommand(),
		c.noteGetCommand(),
		c.noteListCommand(),
		c.noteDeleteCommand(),
		c.notePinCommand(),
	)

	return cmd
}

func (c *cli) noteSaveCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Upsert a note read as JSON from stdin or --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var note models.Note
			if err := readInput(cmd, file, &note); err != nil {
				return err
			}

			return c.saveAndPrintNote(cmd, note)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the note from this file instead of stdin")

	return cmd
}

func (c *cli) noteNewCommand() *cobra.Command {
	var (
		title    string
		content  string
		folderID string
		font     string
		pinned   bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note with a generated id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			note := models.Note{
				ID:       utils.NewUUIDGenerator().Generate(),
				Title:    title,
				Content:  content,
				IsPinned: pinned,
			}
			if cmd.Flags().Changed("folder") {
				note.FolderID = &folderID
			}
			if cmd.Flags().Changed("font") {
				note.Font = &font
			}

			return c.saveAndPrintNote(cmd, note)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	cmd.Flags().StringVar(&folderID, "folder", "", "Folder id")
	cmd.Flags().StringVar(&font, "font", "", "Display font")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "Pin the note")

	return cmd
}

func (c *cli) saveAndPrintNote(cmd *cobra.Command, note models.Note) error {
	ctx := cmd.Context()

	if err := c.notes().SaveNote(ctx, note); err != nil {
		return err
	}

	saved, err := c.notes().GetNote(ctx, note.ID)
	if err != nil {
		return err
	}
	if saved == nil {
		return fmt.Errorf("%w: %s", app.ErrNoteNotFound, note.ID)
	}

	return writeJSON(cmd.OutOrStdout(), saved)
}

func (c *cli) noteGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one note",
		Args:  exactlyOneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := c.notes().GetNote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if note == nil {
				return fmt.Errorf("%w: %s", app.ErrNoteNotFound, args[0])
			}

			return writeJSON(cmd.OutOrStdout(), note)
		},
	}
}

func (c *cli) noteListCommand() *cobra.Command {
	var (
		folderID string
		unfiled  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first then most recently updated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			byFolder := cmd.Flags().Changed("folder")
			if byFolder && unfiled {
				return fmt.Errorf("%w: --folder and --unfiled are mutually exclusive", app.ErrInvalidInput)
			}

			var (
				notes []models.Note
				err   error
			)
			switch {
			case byFolder:
				notes, err = c.notes().GetNotesInFolder(cmd.Context(), folderID)
			case unfiled:
				notes, err = c.notes().GetNotesInFolder(cmd.Context(), "")
			default:
				notes, err = c.notes().GetAllNotes(cmd.Context())
			}
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), notes)
		},
	}
	cmd.Flags().StringVar(&folderID, "folder", "", "Only notes in this folder")
	cmd.Flags().BoolVar(&unfiled, "unfiled", false, "Only notes without a folder")

	return cmd
}

func (c *cli) noteDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  exactlyOneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.notes().DeleteNote(cmd.Context(), args[0]); err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), deletedOutput{Deleted: args[0]})
		},
	}
}

func (c *cli) notePinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>",
		Short: "Toggle the pinned state of a note",
		Args:  exactlyOneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := c.notes().TogglePin(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), note)
		},
	}
}

// readInput decodes JSON from file, or from the command's stdin when file is
// empty.
func readInput(cmd *cobra.Command, file string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("%w: %w", app.ErrInvalidInput, err)
		}
		defer f.Close()
		r = f
	}

	return readJSON(r, v)
}
