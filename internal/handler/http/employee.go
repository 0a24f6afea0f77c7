// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/models"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.services.EmployeeService.ListEmployees(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	writeJSON(w, r, http.StatusOK, employees)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, models.EmployeeCreatedResponse{
		Message:    app.MsgEmployeeCreated,
		EmployeeID: employee.EmployeeID,
	})
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.services.EmployeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, employee)
}

// updateEmployee rejects a malformed id before the body is decoded, so a bad
// id answers IdNotFound whatever the body holds.
func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ids.ValidateID(id); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrIDNotFound, err))
		return
	}

	var changes models.EmployeeChanges
	if err := decodeBody(w, r, &changes); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.EmployeeService.UpdateEmployee(r.Context(), id, changes); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgEmployeeUpdated})
}

// deleteEmployee takes the id from the "id" query parameter.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EmployeeService.DeleteEmployee(r.Context(), r.URL.Query().Get("id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgEmployeeDeleted})
}
