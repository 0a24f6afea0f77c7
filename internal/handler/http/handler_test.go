package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/models"
)

const testID = "0190a8c4-7e2b-7c3d-9f1e-123456789abc"

var errUnexpectedCall = errors.New("unexpected service call")

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case; unset fields answer errUnexpectedCall.
type fakeAuthService struct {
	signupFn func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn  func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if f.signupFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return f.signupFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if f.loginFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return f.loginFn(ctx, req)
}

// fakeEmployeeService implements service.EmployeeService.
type fakeEmployeeService struct {
	listFn   func(ctx context.Context) ([]models.Employee, error)
	createFn func(ctx context.Context, req models.EmployeeRequest) (models.Employee, error)
	getFn    func(ctx context.Context, id string) (models.Employee, error)
	updateFn func(ctx context.Context, id string, changes models.EmployeeChanges) error
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if f.listFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listFn(ctx)
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, req models.EmployeeRequest) (models.Employee, error) {
	if f.createFn == nil {
		return models.Employee{}, errUnexpectedCall
	}
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	if f.getFn == nil {
		return models.Employee{}, errUnexpectedCall
	}
	return f.getFn(ctx, id)
}

func (f *fakeEmployeeService) UpdateEmployee(ctx context.Context, id string, changes models.EmployeeChanges) error {
	if f.updateFn == nil {
		return errUnexpectedCall
	}
	return f.updateFn(ctx, id, changes)
}

func (f *fakeEmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	if f.deleteFn == nil {
		return errUnexpectedCall
	}
	return f.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth service.AuthService, employees service.EmployeeService) *Handler {
	if auth == nil {
		auth = &fakeAuthService{}
	}
	if employees == nil {
		employees = &fakeEmployeeService{}
	}

	return NewHandler(
		&service.Services{AuthService: auth, EmployeeService: employees},
		config.Server{RequestTimeout: 5 * time.Second},
		logger.Nop(),
	)
}

func serve(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeBodyAs[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func requireError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rr.Code, "body: %s", rr.Body.String())
	body := decodeBodyAs[models.ErrorResponse](t, rr)
	require.False(t, body.Status)
	require.Equal(t, message, body.Message)
}
