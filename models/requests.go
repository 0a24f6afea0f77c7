// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Request bodies use pointer fields so that an absent or null JSON key can be
// told apart from an empty string: only the former counts as missing.

// SignupRequest is the body of POST /api/v1/user/signup.
type SignupRequest struct {
	Username *string `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /api/v1/user/login.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// EmployeeRequest is the body of POST /api/v1/emp/employees.
type EmployeeRequest struct {
	FirstName     *string  `json:"first_name" validate:"required"`
	LastName      *string  `json:"last_name" validate:"required"`
	Email         *string  `json:"email" validate:"required"`
	Position      *string  `json:"position" validate:"required"`
	Salary        *float64 `json:"salary" validate:"required"`
	DateOfJoining *Date    `json:"date_of_joining" validate:"required"`
	Department    *string  `json:"department" validate:"required"`
}

// Employee converts a validated request into a new employee record.
// It must only be called after validation has accepted the request.
func (r EmployeeRequest) Employee() Employee {
	return Employee{
		FirstName:     *r.FirstName,
		LastName:      *r.LastName,
		Email:         *r.Email,
		Position:      *r.Position,
		Salary:        *r.Salary,
		DateOfJoining: *r.DateOfJoining,
		Department:    *r.Department,
	}
}

// EmployeeChanges is the raw body of PUT /api/v1/emp/employees/{id}: a JSON
// object whose keys name the employee fields to overwrite.
type EmployeeChanges map[string]json.RawMessage

// ToUpdate decodes every key that names an employee field into an
// [EmployeeUpdate]. Unknown keys and null values are skipped. A value of the
// wrong type is an error.
func (c EmployeeChanges) ToUpdate(employeeID string) (EmployeeUpdate, error) {
	update := EmployeeUpdate{EmployeeID: employeeID}

	for key, raw := range c {
		if isJSONNull(raw) {
			continue
		}

		var target any
		switch key {
		case "first_name":
			update.FirstName = new(string)
			target = update.FirstName
		case "last_name":
			update.LastName = new(string)
			target = update.LastName
		case "email":
			update.Email = new(string)
			target = update.Email
		case "position":
			update.Position = new(string)
			target = update.Position
		case "salary":
			update.Salary = new(float64)
			target = update.Salary
		case "date_of_joining":
			update.DateOfJoining = new(Date)
			target = update.DateOfJoining
		case "department":
			update.Department = new(string)
			target = update.Department
		default:
			continue
		}

		if err := json.Unmarshal(raw, target); err != nil {
			return EmployeeUpdate{}, fmt.Errorf("invalid value for %q: %w", key, err)
		}
	}

	return update, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
