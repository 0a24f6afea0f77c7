// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the server handlers and
// the API client.
//
// Msg* constants are written into HTTP response bodies. The client matches on
// the error messages to recover the error kind, so their wording is part of
// the API and never changes.
package app

// Error taxonomy messages, carried in {"status": false, "message": ...}.
const (
	// MsgEmptyInput is returned when a required request field is absent or
	// null.
	MsgEmptyInput = "Input parameters cannot be empty."

	// MsgEmailNotFound is returned by login when no account has the email.
	MsgEmailNotFound = "An account with the email provided does not exist."

	// MsgIncorrectPassword is returned by login on a password mismatch.
	MsgIncorrectPassword = "The password provided was incorrect."

	// MsgIDNotFound is returned when an employee id is malformed or unknown.
	MsgIDNotFound = "The ID provided does not exist."

	// MsgDefault is returned for every other failure.
	MsgDefault = "An error has occurred."
)

// Success messages.
const (
	MsgUserCreated     = "User created successfully."
	MsgLoginSuccessful = "Login successful."
	MsgEmployeeCreated = "Employee created successfully."
	MsgEmployeeUpdated = "Employee details updated successfully."
	MsgEmployeeDeleted = "Employee deleted successfully."
)
