// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Prefix full-text search over titles and contents, best match first",
		Long: `Search joins its arguments into one query. Punctuation is ignored and the
last word matches as a prefix. At most 50 notes are returned.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := c.notes().SearchNotes(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), notes)
		},
	}
}
