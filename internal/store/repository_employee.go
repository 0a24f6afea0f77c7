// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// employeeRepository is the SQL implementation of [EmployeeRepository] over
// the "employees" table.
type employeeRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewEmployeeRepository(db *DB, ids IDGenerator, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		ids:    ids,
		now:    utcNow,
		logger: logger,
	}
}

func (r *employeeRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectEmployees()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.ListEmployees").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	employees := make([]models.Employee, 0)
	if err = r.db.SelectContext(ctx, &employees, query, args...); err != nil {
		log.Err(err).Str("func", "*employeeRepository.ListEmployees").Msg("error selecting employees")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}

	return employees, nil
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, id string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectEmployeeByID(id)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.FindEmployeeByID").Msg("error building query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var employee models.Employee
	if err = r.db.GetContext(ctx, &employee, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}

		log.Err(err).Str("func", "*employeeRepository.FindEmployeeByID").Msg("error selecting employee")
		return models.Employee{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return employee, nil
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	employee.EmployeeID = r.ids.Generate()
	employee.CreatedAt = r.now()
	employee.UpdatedAt = employee.CreatedAt

	query, args, err := r.db.queries.insertEmployee(employee)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Msg("error building query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Msg("error inserting employee")
		return models.Employee{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return employee, nil
}

// UpdateEmployee writes the non-nil fields of update in a single statement.
// An update without fields still bumps updated_at, which also tells whether
// the employee exists.
func (r *employeeRepository) UpdateEmployee(ctx context.Context, update models.EmployeeUpdate) error {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Debug().Str("employee_id", update.EmployeeID).Msg("no employee fields to change, touching updated_at only")
	}

	query, args, err := r.db.queries.updateEmployee(update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.UpdateEmployee").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*employeeRepository.UpdateEmployee", query, args)
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.deleteEmployee(id)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.DeleteEmployee").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*employeeRepository.DeleteEmployee", query, args)
}

// execAffectingOne runs a statement addressed by primary key and reports
// ErrEmployeeNotFound when no row matched.
func (r *employeeRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
