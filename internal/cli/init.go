// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"
)

type initOutput struct {
	Path          string `json:"path"`
	SchemaVersion int64  `json:"schemaVersion"`
}

func (c *cli) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or upgrade the database and print its location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.app.Services.AppInfoService.GetAppInfo(cmd.Context())
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), initOutput{
				Path:          c.cfg.DatabasePath(),
				SchemaVersion: info.SchemaVersion,
			})
		},
	}
}
