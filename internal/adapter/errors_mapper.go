// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/models"
)

var messageErrors = map[string]error{
	app.MsgEmptyInput:        ErrEmptyInput,
	app.MsgEmailNotFound:     ErrEmailNotFound,
	app.MsgIncorrectPassword: ErrIncorrectPassword,
	app.MsgIDNotFound:        ErrIDNotFound,
}

// mapHTTPError returns nil for a 2xx response. Otherwise it maps the message
// of the JSON error body to a sentinel error, falling back to ErrServer.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		if target, ok := messageErrors[body.Message]; ok {
			return fmt.Errorf("%w: %s", target, body.Message)
		}
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), body.Message)
	}

	text := strings.TrimSpace(string(resp.Body()))
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), text)
}
