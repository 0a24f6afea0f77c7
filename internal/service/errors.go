// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Sentinel errors returned (possibly wrapped) by the services. The HTTP
// layer maps each of them to a fixed status and message; any other error is
// answered as a generic failure.
var (
	ErrEmptyInput        = errors.New("required input parameters are missing")
	ErrEmailNotFound     = errors.New("no account with the given email")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrIDNotFound        = errors.New("id is malformed or unknown")
)
