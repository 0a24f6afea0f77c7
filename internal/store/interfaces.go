// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores user with a freshly generated id and timestamps and
	// returns the stored record. The password must already be encoded.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// EmployeeRepository persists employee records.
type EmployeeRepository interface {
	// ListEmployees returns every employee ordered by creation time.
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// FindEmployeeByID returns the employee or ErrEmployeeNotFound.
	FindEmployeeByID(ctx context.Context, id string) (models.Employee, error)

	// CreateEmployee stores employee with a freshly generated id and
	// timestamps and returns the stored record.
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)

	// UpdateEmployee overwrites the fields set in update and bumps
	// updated_at. It returns ErrEmployeeNotFound for an unknown id.
	UpdateEmployee(ctx context.Context, update models.EmployeeUpdate) error

	// DeleteEmployee removes the employee or returns ErrEmployeeNotFound.
	DeleteEmployee(ctx context.Context, id string) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces ids for new rows.
type IDGenerator interface {
	Generate() string
}
