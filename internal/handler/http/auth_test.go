package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/crypto"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/mock"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// ── signup ───────────────────────────────────────────────────────────────────

func TestSignup_Created(t *testing.T) {
	auth := &fakeAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
			require.NotNil(t, req.Username)
			assert.Equal(t, "alice", *req.Username)
			return models.User{UserID: testID}, nil
		},
	}

	rr := serve(t, newTestHandler(auth, nil), http.MethodPost, "/api/v1/user/signup",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	body := decodeBodyAs[models.SignupResponse](t, rr)
	assert.Equal(t, "User created successfully.", body.Message)
	assert.Equal(t, testID, body.UserID)
}

func TestSignup_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "empty input", err: fmt.Errorf("%w: username", service.ErrEmptyInput), wantStatus: http.StatusBadRequest, wantMessage: app.MsgEmptyInput},
		{name: "duplicate email", err: fmt.Errorf("wrapped: %w", store.ErrEmailAlreadyExists), wantStatus: http.StatusBadRequest, wantMessage: app.MsgDefault},
		{name: "driver failure", err: errors.New(`pq: relation "users" does not exist`), wantStatus: http.StatusBadRequest, wantMessage: app.MsgDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				signupFn: func(context.Context, models.SignupRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			}

			rr := serve(t, newTestHandler(auth, nil), http.MethodPost, "/api/v1/user/signup", `{}`)
			requireError(t, rr, tt.wantStatus, tt.wantMessage)
			assert.NotContains(t, rr.Body.String(), "relation")
		})
	}
}

func TestSignup_InvalidJSON(t *testing.T) {
	rr := serve(t, newTestHandler(nil, nil), http.MethodPost, "/api/v1/user/signup", `{"username":`)
	requireError(t, rr, http.StatusBadRequest, app.MsgDefault)
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusOK, wantMessage: "Login successful."},
		{name: "empty input", err: service.ErrEmptyInput, wantStatus: http.StatusBadRequest, wantMessage: app.MsgEmptyInput},
		{name: "unknown email", err: service.ErrEmailNotFound, wantStatus: http.StatusNotFound, wantMessage: app.MsgEmailNotFound},
		{name: "wrong password", err: service.ErrIncorrectPassword, wantStatus: http.StatusNotFound, wantMessage: app.MsgIncorrectPassword},
		{name: "malformed secret", err: crypto.ErrMalformedSecret, wantStatus: http.StatusBadRequest, wantMessage: app.MsgDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
					return models.User{UserID: testID}, tt.err
				},
			}

			rr := serve(t, newTestHandler(auth, nil), http.MethodPost, "/api/v1/user/login",
				`{"email":"alice@example.com","password":"s3cret"}`)

			if tt.err == nil {
				require.Equal(t, tt.wantStatus, rr.Code)
				assert.Equal(t, tt.wantMessage, decodeBodyAs[models.MessageResponse](t, rr).Message)
				return
			}
			requireError(t, rr, tt.wantStatus, tt.wantMessage)
		})
	}
}

// ── signup and login through the real services ───────────────────────────────

func newAuthHandler(t *testing.T) (*Handler, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	auth := service.NewAuthService(repo, crypto.NewBcryptCodec(bcrypt.MinCost), validators.NewInputValidator(), logger.Nop())
	return newTestHandler(auth, nil), repo
}

func TestSignup_MissingFields_NoStoreCall(t *testing.T) {
	bodies := []string{
		``,
		`{}`,
		`{"email":"a@b.c","password":"p"}`,
		`{"username":"a","password":"p"}`,
		`{"username":"a","email":null,"password":"p"}`,
		`{"username":"a","email":"a@b.c"}`,
	}

	for _, body := range bodies {
		h, _ := newAuthHandler(t)
		rr := serve(t, h, http.MethodPost, "/api/v1/user/signup", body)
		requireError(t, rr, http.StatusBadRequest, app.MsgEmptyInput)
	}
}

func TestSignupThenLogin(t *testing.T) {
	h, repo := newAuthHandler(t)

	var stored models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = testID
			stored = u
			return u, nil
		},
	)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").AnyTimes().DoAndReturn(
		func(context.Context, string) (models.User, error) { return stored, nil },
	)
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Not("alice@example.com")).AnyTimes().
		Return(models.User{}, store.ErrUserNotFound)

	rr := serve(t, h, http.MethodPost, "/api/v1/user/signup",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, testID, decodeBodyAs[models.SignupResponse](t, rr).UserID)
	assert.NotEqual(t, "s3cret", stored.Password)

	for range 2 {
		rr = serve(t, h, http.MethodPost, "/api/v1/user/login", `{"email":"alice@example.com","password":"s3cret"}`)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr = serve(t, h, http.MethodPost, "/api/v1/user/login", `{"email":"alice@example.com","password":"nope"}`)
	requireError(t, rr, http.StatusNotFound, app.MsgIncorrectPassword)

	rr = serve(t, h, http.MethodPost, "/api/v1/user/login", `{"email":"bob@example.com","password":"s3cret"}`)
	requireError(t, rr, http.StatusNotFound, app.MsgEmailNotFound)

	rr = serve(t, h, http.MethodPost, "/api/v1/user/login", `{"password":"s3cret"}`)
	requireError(t, rr, http.StatusBadRequest, app.MsgEmptyInput)
}
