// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of a successful call that only reports what
// happened.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse is returned with 201 Created after a user signs up.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// EmployeeCreatedResponse is returned with 201 Created after an employee is
// added.
type EmployeeCreatedResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

// ErrorResponse is the body of every failed call. Status is always false.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
