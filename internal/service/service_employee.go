// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// employeeService talks to the EmployeeRepository. It expects its input to be
// validated already and is meant to be used behind [EmployeeValidationService].
type employeeService struct {
	employeeRepository store.EmployeeRepository
	logger             *logger.Logger
}

func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepository.ListEmployees(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing employees")
		return nil, fmt.Errorf("error listing employees: %w", err)
	}

	return employees, nil
}

// CreateEmployee stores the employee described by req. Every field of req
// must be set.
func (s *employeeService) CreateEmployee(ctx context.Context, req models.EmployeeRequest) (models.Employee, error) {
	employee, err := s.employeeRepository.CreateEmployee(ctx, req.Employee())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error creating employee")
		return models.Employee{}, fmt.Errorf("error creating employee: %w", err)
	}

	return employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	employee, err := s.employeeRepository.FindEmployeeByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("employee_id", id).Msg("error finding employee")
		return models.Employee{}, notFoundAsIDError(err)
	}

	return employee, nil
}

// UpdateEmployee overwrites every employee field named in changes. Keys that
// name no field are ignored. A value of the wrong type fails the whole
// update.
func (s *employeeService) UpdateEmployee(ctx context.Context, id string, changes models.EmployeeChanges) error {
	log := logger.FromContext(ctx)

	update, err := changes.ToUpdate(id)
	if err != nil {
		log.Err(err).Str("employee_id", id).Msg("invalid employee changes")
		return fmt.Errorf("invalid employee changes: %w", err)
	}

	if err = s.employeeRepository.UpdateEmployee(ctx, update); err != nil {
		log.Err(err).Str("employee_id", id).Msg("error updating employee")
		return notFoundAsIDError(err)
	}

	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepository.DeleteEmployee(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("employee_id", id).Msg("error deleting employee")
		return notFoundAsIDError(err)
	}

	return nil
}

func notFoundAsIDError(err error) error {
	if errors.Is(err, store.ErrEmployeeNotFound) {
		return fmt.Errorf("%w: %w", ErrIDNotFound, err)
	}
	return fmt.Errorf("employee storage error: %w", err)
}
