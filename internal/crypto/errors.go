// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedSecret is returned by Verify when the stored value is not a
	// bcrypt hash. It signals corrupted data, not a wrong password.
	ErrMalformedSecret = errors.New("stored secret is malformed")

	// ErrPasswordTooLong is returned by Encode for inputs bcrypt would
	// silently truncate.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
