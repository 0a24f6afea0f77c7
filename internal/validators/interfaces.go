// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads for required fields and
// resource identifiers for well-formedness before any store access.
//
// A field is missing when it is absent from the payload or explicitly null.
// Empty strings and zero numbers are present values.
package validators

// Validator validates request payloads and identifiers.
type Validator interface {
	// Validate reports which required fields of payload are missing.
	// payload must be a struct or a pointer to one; anything else is
	// ErrUnsupportedType.
	Validate(payload any) (Outcome, error)

	// ValidateID returns ErrInvalidID unless id is a canonical store id.
	ValidateID(id string) error
}
