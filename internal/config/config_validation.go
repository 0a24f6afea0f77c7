// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDSN
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnsupportedDriver
	}

	if cfg.Storage.DB.QueryTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidTimeout
	}

	if cfg.App.PasswordHashCost < 0 {
		return ErrInvalidHashCost
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrMissingAddress
	}

	return nil
}
