// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the webnotes command line host. Every command
// opens the store, brings the schema up to date, runs one operation and
// prints its result as JSON on stdout. Failures are printed as JSON on
// stderr and mapped onto an exit code.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

type cli struct {
	buildInfo models.AppBuildInfo

	cfg *config.StructuredConfig
	app *app.App
}

// Execute runs the command line in args and returns the process exit code.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{buildInfo: buildInfo}
	defer c.close()

	root := c.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		if c.app != nil {
			c.app.Logger.Err(err).Str("func", "cli.Execute").Msg("command failed")
		}
		writeError(stderr, err)
	}

	return app.ExitCodeFromError(err)
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "webnotes",
		Short: "Local note storage with full-text search",
		Long: `webnotes keeps notes and folders in a single SQLite file under the data
directory and indexes them for prefix full-text search.

Every command prints JSON on stdout.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
	}

	config.RegisterFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", app.ErrInvalidInput, err)
	})

	root.AddCommand(
		c.initCommand(),
		c.noteCommand(),
		c.folderCommand(),
		c.searchCommand(),
		c.reindexCommand(),
		c.doctorCommand(),
		c.versionCommand(),
	)

	return root
}

// open loads the configuration and opens the runtime before any command
// runs.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	a, err := app.NewWithLogWriter(cmd.Context(), cfg, c.buildInfo, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.app = a
	return nil
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	if err := c.app.Close(); err != nil {
		c.app.Logger.Err(err).Str("func", "cli.close").Msg("error closing application")
	}
	c.app = nil
}

func (c *cli) notes() service.NotesService {
	return c.app.Services.NotesService
}

// exactlyOneID accepts a single positional id argument.
func exactlyOneID(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one id, got %d arguments", app.ErrInvalidInput, len(args))
	}
	return nil
}
