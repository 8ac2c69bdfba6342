// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

func (c *cli) folderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
	}

	cmd.AddCommand(
		c.folderSaveCommand(),
		c.folderNewCommand(),
		c.folderListCommand(),
		c.folderDeleteCommand(),
	)

	return cmd
}

func (c *cli) folderSaveCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Upsert a folder read as JSON from stdin or --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var folder models.Folder
			if err := readInput(cmd, file, &folder); err != nil {
				return err
			}

			return c.saveAndPrintFolder(cmd, folder)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the folder from this file instead of stdin")

	return cmd
}

func (c *cli) folderNewCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a folder with a generated id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.saveAndPrintFolder(cmd, models.Folder{
				ID:   utils.NewUUIDGenerator().Generate(),
				Name: name,
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Folder name")

	return cmd
}

// saveAndPrintFolder saves folder and prints the stored row.
func (c *cli) saveAndPrintFolder(cmd *cobra.Command, folder models.Folder) error {
	ctx := cmd.Context()

	if err := c.notes().SaveFolder(ctx, folder); err != nil {
		return err
	}

	folders, err := c.notes().GetAllFolders(ctx)
	if err != nil {
		return err
	}
	for _, f := range folders {
		if f.ID == folder.ID {
			return writeJSON(cmd.OutOrStdout(), f)
		}
	}

	return writeJSON(cmd.OutOrStdout(), folder)
}

func (c *cli) folderListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List folders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folders, err := c.notes().GetAllFolders(cmd.Context())
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), folders)
		},
	}
}

func (c *cli) folderDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a folder; its notes become unfiled",
		Args:  exactlyOneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.notes().DeleteFolder(cmd.Context(), args[0]); err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), deletedOutput{Deleted: args[0]})
		},
	}
}
