// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUsage is returned for an unknown command or missing arguments.
	ErrUsage = errors.New("usage error")
)
