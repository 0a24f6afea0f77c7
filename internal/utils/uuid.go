// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the handlers and the store:
// identifier generation and validation, and JSON request/response helpers.
package utils

import "github.com/google/uuid"

// canonicalUUIDLen is the length of the 8-4-4-4-12 textual form.
const canonicalUUIDLen = 36

// UUIDGenerator produces identifiers for new users and employees.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered (version 7) UUID, falling back to a random
// one if the clock cannot be read.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is a UUID in canonical textual form. Braced
// and urn-prefixed forms are rejected.
func IsValidID(id string) bool {
	if len(id) != canonicalUUIDLen {
		return false
	}

	_, err := uuid.Parse(id)
	return err == nil
}
