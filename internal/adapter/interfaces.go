// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the staff API.
//
// [StaffAPI] hides the transport from cmd/client. Failed calls are mapped by
// mapHTTPError to the sentinel errors in errors.go so that callers can use
// [errors.Is] (e.g. [ErrIDNotFound] for an unknown employee).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

// StaffAPI is a client of the staff HTTP API.
type StaffAPI interface {
	// Signup registers a user and returns the generated user id.
	Signup(ctx context.Context, req models.SignupRequest) (string, error)

	// Login checks the credentials. It returns nil on success.
	Login(ctx context.Context, req models.LoginRequest) error

	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)

	// CreateEmployee returns the generated employee id.
	CreateEmployee(ctx context.Context, req models.EmployeeRequest) (string, error)

	// UpdateEmployee sends changes as a JSON object of field names to values.
	UpdateEmployee(ctx context.Context, id string, changes map[string]any) error

	DeleteEmployee(ctx context.Context, id string) error
}
