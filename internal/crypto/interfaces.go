// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_codec_mock.go -package=mock

// PasswordCodec turns plaintext passwords into storable secret
// representations and checks candidates against them.
//
// It knows nothing about users, the network or the database.
type PasswordCodec interface {
	// Encode returns a salted, work-factor hash of plaintext. Two calls with
	// the same input return different representations.
	Encode(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored representation.
	// A mismatch is (false, nil); an unparsable stored value is
	// ErrMalformedSecret.
	Verify(plaintext, stored string) (bool, error)
}
