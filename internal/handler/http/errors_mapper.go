// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
)

type errorKind struct {
	status  int
	message string
}

var defaultErrorKind = errorKind{status: http.StatusBadRequest, message: app.MsgDefault}

// errorKinds is checked in order; the first sentinel found in the error chain
// wins.
var errorKinds = []struct {
	target error
	kind   errorKind
}{
	{service.ErrEmptyInput, errorKind{http.StatusBadRequest, app.MsgEmptyInput}},
	{service.ErrEmailNotFound, errorKind{http.StatusNotFound, app.MsgEmailNotFound}},
	{service.ErrIncorrectPassword, errorKind{http.StatusNotFound, app.MsgIncorrectPassword}},
	{service.ErrIDNotFound, errorKind{http.StatusBadRequest, app.MsgIDNotFound}},
}

// kindFromError classifies err into the taxonomy. Anything unrecognised is
// the default kind.
func kindFromError(err error) errorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return defaultErrorKind
}
