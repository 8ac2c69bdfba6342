// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the go-notes-keeper runtime for a host process.
//
// It creates the data directory, builds the logger, opens the store handle,
// wires the services and brings the schema up to date. It also maps
// domain errors onto the user-facing messages and exit codes the CLI
// reports.
package app
