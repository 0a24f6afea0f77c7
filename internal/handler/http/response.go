// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/models"
)

func errorResponse(message string) models.ErrorResponse {
	return models.ErrorResponse{Status: false, Message: message}
}

// writeError logs err with the request logger and answers with the taxonomy
// entry it maps to. err itself never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := kindFromError(err)

	logger.FromRequest(r).Err(err).Int("status", kind.status).Msg(kind.message)

	writeJSON(w, r, kind.status, errorResponse(kind.message))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeBody decodes the JSON request body into dst. An empty body leaves dst
// untouched so that validation reports every required field as missing.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	err := utils.DecodeJSON(w, r, dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
