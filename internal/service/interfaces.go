// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

type AuthService interface {
	// Signup validates req, encodes the password and stores a new user.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login checks req against the stored credentials. It never mutates
	// state and issues no token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, req models.EmployeeRequest) (models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, changes models.EmployeeChanges) error
	DeleteEmployee(ctx context.Context, id string) error
}

// EmployeeServiceWrapper defines middleware composition for EmployeeService.
// Implementations wrap an existing EmployeeService to add behavior such as
// validation.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService
}
