// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
)

const testID = "0190a6f2-8a51-7cc1-9b3c-5a3c3b6f1e2d"

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type fixedIDs string

func (f fixedIDs) Generate() string {
	return string(f)
}

func newTestDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == config.DriverSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	cfg := config.DB{Driver: dialect, QueryTimeout: time.Second}
	return newDB(sqlx.NewDb(conn, dialect), cfg, classifier, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, config.DriverPostgres)
	return &userRepository{
		db:     db,
		ids:    fixedIDs(testID),
		now:    func() time.Time { return testNow },
		logger: logger.Nop(),
	}, mock
}

func newTestEmployeeRepo(t *testing.T) (*employeeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, config.DriverPostgres)
	return &employeeRepository{
		db:     db,
		ids:    fixedIDs(testID),
		now:    func() time.Time { return testNow },
		logger: logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
