// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password codec used by the auth service.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// BcryptCodec is a [PasswordCodec] backed by bcrypt. The salt is generated
// per call and embedded in the result together with the cost.
type BcryptCodec struct {
	cost int
}

// NewBcryptCodec returns a codec with the given work factor, clamped to
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptCodec(cost int) *BcryptCodec {
	return &BcryptCodec{cost: clampCost(cost)}
}

// Cost reports the effective work factor.
func (c *BcryptCodec) Cost() int {
	return c.cost
}

func (c *BcryptCodec) Encode(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", fmt.Errorf("error encoding password: %w", err)
	}

	return string(hash), nil
}

func (c *BcryptCodec) Verify(plaintext, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %v", ErrMalformedSecret, err)
}

func clampCost(cost int) int {
	switch {
	case cost < bcrypt.MinCost:
		return bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	default:
		return cost
	}
}
