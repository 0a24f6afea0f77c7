// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

const (
	signupPath    = "/api/v1/user/signup"
	loginPath     = "/api/v1/user/login"
	employeesPath = "/api/v1/emp/employees"
	employeePath  = "/api/v1/emp/employees/{id}"
)

type httpStaffAPI struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPStaffAPI constructs the HTTP implementation of [StaffAPI]. It
// normalises cfg.HTTPAddress into a base URL; an empty or unparsable address
// is an error.
func NewHTTPStaffAPI(cfg config.ClientAdapter, logger *logger.Logger) (StaffAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpStaffAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpStaffAPI) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	var created models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post(signupPath)
	if err != nil {
		return "", fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("user_id", created.UserID).Msg(created.Message)
	return created.UserID, nil
}

func (h *httpStaffAPI) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(loginPath)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpStaffAPI) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&employees).
		Get(employeesPath)
	if err != nil {
		return nil, fmt.Errorf("list employees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return employees, nil
}

func (h *httpStaffAPI) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	var employee models.Employee

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&employee).
		Get(employeePath)
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

func (h *httpStaffAPI) CreateEmployee(ctx context.Context, req models.EmployeeRequest) (string, error) {
	var created models.EmployeeCreatedResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post(employeesPath)
	if err != nil {
		return "", fmt.Errorf("create employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.EmployeeID, nil
}

func (h *httpStaffAPI) UpdateEmployee(ctx context.Context, id string, changes map[string]any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(changes).
		Put(employeePath)
	if err != nil {
		return fmt.Errorf("update employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpStaffAPI) DeleteEmployee(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("id", id).
		Delete(employeesPath)
	if err != nil {
		return fmt.Errorf("delete employee request: %w", err)
	}

	return mapHTTPError(resp)
}
