// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command webnotes is the command line host of go-notes-keeper.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/cli"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	code := cli.Execute(ctx, buildInfo, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
