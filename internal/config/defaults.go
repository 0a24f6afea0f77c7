// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	dotEnvFile = ".env"

	defaultHTTPAddress      = "localhost:3000"
	defaultRequestTimeout   = 30 * time.Second
	defaultQueryTimeout     = 5 * time.Second
	defaultPasswordHashCost = 10
	defaultLogLevel         = "debug"
)

// defaults returns the values used for every field no other source has set.
// The DSN has no default.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				QueryTimeout: defaultQueryTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
