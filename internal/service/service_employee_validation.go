// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// EmployeeValidationService rejects missing payload fields and malformed ids
// before the wrapped service (and therefore the store) is reached.
type EmployeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService(validator validators.Validator) EmployeeServiceWrapper {
	return &EmployeeValidationService{
		validator: validator,
	}
}

func (v *EmployeeValidationService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return v.inner.ListEmployees(ctx)
}

func (v *EmployeeValidationService) CreateEmployee(ctx context.Context, req models.EmployeeRequest) (models.Employee, error) {
	if err := validatePayload(v.validator, req); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid employee request")
		return models.Employee{}, err
	}

	return v.inner.CreateEmployee(ctx, req)
}

func (v *EmployeeValidationService) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Employee{}, err
	}

	return v.inner.GetEmployee(ctx, id)
}

func (v *EmployeeValidationService) UpdateEmployee(ctx context.Context, id string, changes models.EmployeeChanges) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.UpdateEmployee(ctx, id, changes)
}

func (v *EmployeeValidationService) DeleteEmployee(ctx context.Context, id string) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.DeleteEmployee(ctx, id)
}

func (v *EmployeeValidationService) Wrap(wrapper EmployeeService) EmployeeService {
	v.inner = wrapper
	return v
}

func (v *EmployeeValidationService) validateID(ctx context.Context, id string) error {
	if err := v.validator.ValidateID(id); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid employee id")
		return fmt.Errorf("%w: %w", ErrIDNotFound, err)
	}
	return nil
}
