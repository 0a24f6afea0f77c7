// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/crypto"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewInputValidator()
	codec := crypto.NewBcryptCodec(cfg.PasswordHashCost)

	employeeService := NewEmployeeService(storages.EmployeeRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, codec, validator, logger),
		EmployeeService: NewEmployeeValidationService(validator).Wrap(employeeService),
	}
}
