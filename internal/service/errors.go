// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSchemaInitialization = errors.New("schema initialization failed")
	ErrSchemaVersion        = errors.New("cannot read schema version")
)
