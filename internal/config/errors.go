// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingDSN indicates that no database DSN was provided by any source.
	ErrMissingDSN = errors.New("database DSN is required")
	// ErrUnsupportedDriver indicates a driver other than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrInvalidTimeout indicates a negative request or query timeout.
	ErrInvalidTimeout = errors.New("timeouts must not be negative")
	// ErrInvalidHashCost indicates a negative password work factor.
	ErrInvalidHashCost = errors.New("password hash cost must not be negative")
	// ErrMissingAddress indicates an empty server address.
	ErrMissingAddress = errors.New("server address is required")
)
