// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Employee is a staff record managed through the employee endpoints.
// All profile fields are mandatory at creation time.
type Employee struct {
	EmployeeID    string    `json:"id" db:"id"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	Email         string    `json:"email" db:"email"`
	Position      string    `json:"position" db:"position"`
	Salary        float64   `json:"salary" db:"salary"`
	DateOfJoining Date      `json:"date_of_joining" db:"date_of_joining"`
	Department    string    `json:"department" db:"department"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}

// EmployeeUpdate carries the columns to change on an existing employee.
// Only non-nil fields are written (partial update).
type EmployeeUpdate struct {
	EmployeeID string

	FirstName     *string
	LastName      *string
	Email         *string
	Position      *string
	Salary        *float64
	DateOfJoining *Date
	Department    *string
}

// Empty reports whether the update does not change any column.
func (u EmployeeUpdate) Empty() bool {
	return u.FirstName == nil &&
		u.LastName == nil &&
		u.Email == nil &&
		u.Position == nil &&
		u.Salary == nil &&
		u.DateOfJoining == nil &&
		u.Department == nil
}
