// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
)

// ErrorClassification is the result of [ErrorClassificator.Classify]. It
// tells repositories which sentinel error, if any, a driver error stands for.
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated sentinel.
	Unclassified ErrorClassification = iota

	// UniqueViolation means an insert or update hit a unique index.
	UniqueViolation

	// Timeout means the statement was cancelled by its context or by the
	// server.
	Timeout

	// ConnectionFailure means the database could not be reached.
	ConnectionFailure
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case Timeout:
		return "timeout"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "unclassified"
	}
}

// classifyContextError handles the driver-independent part of classification.
func classifyContextError(err error) (ErrorClassification, bool) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Timeout, true
	}
	return Unclassified, false
}
