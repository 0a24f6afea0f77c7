// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// A request whose path exists only under other methods is answered with 404
// and the JSON error body instead of chi's bare 405, hiding which methods a
// route supports.
//
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("method is not allowed")

	writeJSON(w, r, http.StatusNotFound, errorResponse(http.StatusText(http.StatusNotFound)))
}
