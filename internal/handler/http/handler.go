// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every /api/v1 request; zero disables the bound.
	requestTimeout time.Duration

	// ids checks route ids that must be rejected before the body is read.
	ids validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		ids:            validators.NewInputValidator(),
		logger:         logger,
	}
}
