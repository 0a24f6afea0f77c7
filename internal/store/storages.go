// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
)

// Storages bundles the repositories sharing one connection pool.
type Storages struct {
	UserRepository     UserRepository
	EmployeeRepository EmployeeRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, utils.NewUUIDGenerator(), log), nil
}

func newStorages(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, ids, log),
		EmployeeRepository: NewEmployeeRepository(db, ids, log),
		db:                 db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
