package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
)

func TestKindFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"empty input", service.ErrEmptyInput, http.StatusBadRequest, app.MsgEmptyInput},
		{"wrapped empty input", fmt.Errorf("outer: %w", service.ErrEmptyInput), http.StatusBadRequest, app.MsgEmptyInput},
		{"email not found", service.ErrEmailNotFound, http.StatusNotFound, app.MsgEmailNotFound},
		{"incorrect password", service.ErrIncorrectPassword, http.StatusNotFound, app.MsgIncorrectPassword},
		{"id not found", fmt.Errorf("%w: %w", service.ErrIDNotFound, store.ErrEmployeeNotFound), http.StatusBadRequest, app.MsgIDNotFound},
		{"store error", store.ErrExecutingQuery, http.StatusBadRequest, app.MsgDefault},
		{"deadline", context.DeadlineExceeded, http.StatusBadRequest, app.MsgDefault},
		{"anything else", errors.New("boom"), http.StatusBadRequest, app.MsgDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := kindFromError(tt.err)
			assert.Equal(t, tt.wantStatus, kind.status)
			assert.Equal(t, tt.wantMessage, kind.message)
		})
	}
}
