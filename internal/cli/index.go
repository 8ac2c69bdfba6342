// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

type reindexOutput struct {
	Indexed int64 `json:"indexed"`
}

type doctorOutput struct {
	Status   models.IndexStatus `json:"status"`
	InSync   bool               `json:"inSync"`
	Repaired bool               `json:"repaired"`
}

func (c *cli) reindexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the search index from the notes table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := c.notes().Reindex(cmd.Context())
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), reindexOutput{Indexed: count})
		},
	}
}

func (c *cli) doctorCommand() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the search index matches the notes table",
		Long: `Doctor counts notes missing from the search index and index rows without
a note. With --fix a drifted index is rebuilt. The command fails when the
index is still out of sync.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			status, err := c.notes().VerifyIndex(ctx)
			if err != nil {
				return err
			}

			out := doctorOutput{Status: status, InSync: status.InSync()}
			if !out.InSync && fix {
				if _, err = c.notes().Reindex(ctx); err != nil {
					return err
				}
				if out.Status, err = c.notes().VerifyIndex(ctx); err != nil {
					return err
				}
				out.InSync = out.Status.InSync()
				out.Repaired = out.InSync
			}

			if err = writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if !out.InSync {
				return app.ErrIndexOutOfSync
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "Rebuild the index when it is out of sync")

	return cmd
}
