// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from the server's error taxonomy.
var (
	ErrEmptyInput        = errors.New("input parameters cannot be empty")
	ErrEmailNotFound     = errors.New("email not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrIDNotFound        = errors.New("id not found")

	// ErrServer is any other failure reported by the server.
	ErrServer = errors.New("server error")
)
