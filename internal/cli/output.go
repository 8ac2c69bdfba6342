// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
)

type errorOutput struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}

func writeError(w io.Writer, err error) {
	_ = writeJSON(w, errorOutput{
		Error:  app.MessageFromError(err),
		Detail: err.Error(),
	})
}

// readJSON decodes a single JSON document from r into v.
func readJSON(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", app.ErrInvalidInput, err)
	}
	return nil
}
