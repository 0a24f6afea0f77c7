// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/crypto"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/metrics"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and a PasswordCodec for the stored secret.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// codec encodes passwords on signup and verifies them on login.
	codec crypto.PasswordCodec

	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordCodec.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, codec crypto.PasswordCodec, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		codec:          codec,
		validator:      validator,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// Returns the persisted user (with a store-assigned UserID) or:
//   - ErrEmptyInput if username, email or password is absent.
//   - A wrapped codec or storage error otherwise (e.g. email already taken,
//     see store.ErrEmailAlreadyExists).
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validatePayload(a.validator, req); err != nil {
		log.Err(err).Msg("invalid signup request")
		metrics.RecordAuthOutcome(metrics.OperationSignup, authOutcome(err))
		return models.User{}, err
	}

	user := models.NewUser(*req.Username, *req.Email, *req.Password)
	if err := a.encodePassword(&user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("error encoding password")
		metrics.RecordAuthOutcome(metrics.OperationSignup, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("error encoding password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		metrics.RecordAuthOutcome(metrics.OperationSignup, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	metrics.RecordAuthOutcome(metrics.OperationSignup, metrics.OutcomeSuccess)
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the stored user record or:
//   - ErrEmptyInput if email or password is absent.
//   - ErrEmailNotFound if no account has the email. The codec is not invoked.
//   - ErrIncorrectPassword if the password does not match.
//   - A wrapped storage or codec error otherwise.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.login(ctx, req)
	if err != nil {
		log.Err(err).Msg("login failed")
	}
	metrics.RecordAuthOutcome(metrics.OperationLogin, authOutcome(err))

	return user, err
}

func (a *authService) login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := validatePayload(a.validator, req); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, *req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailNotFound, err)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	start := time.Now()
	ok, err := a.codec.Verify(*req.Password, foundUser.Password)
	metrics.ObserveCodec(metrics.CodecVerify, start)
	if err != nil {
		return models.User{}, fmt.Errorf("error verifying password of user %s: %w", foundUser.UserID, err)
	}
	if !ok {
		return models.User{}, ErrIncorrectPassword
	}

	return foundUser, nil
}

// encodePassword replaces a dirty plaintext password with its codec
// representation. A clean password is left untouched.
func (a *authService) encodePassword(user *models.User) error {
	if !user.PasswordDirty() {
		return nil
	}

	start := time.Now()
	secret, err := a.codec.Encode(user.Password)
	metrics.ObserveCodec(metrics.CodecEncode, start)
	if err != nil {
		return err
	}

	user.SetEncodedPassword(secret)
	return nil
}

func authOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrEmptyInput):
		return metrics.OutcomeEmptyInput
	case errors.Is(err, ErrEmailNotFound):
		return metrics.OutcomeEmailNotFound
	case errors.Is(err, ErrIncorrectPassword):
		return metrics.OutcomeIncorrectPassword
	default:
		return metrics.OutcomeError
	}
}

// validatePayload returns ErrEmptyInput wrapping the missing fields when
// payload is rejected.
func validatePayload(v validators.Validator, payload any) error {
	outcome, err := v.Validate(payload)
	if err != nil {
		return fmt.Errorf("error validating %T: %w", payload, err)
	}
	if !outcome.IsAccepted() {
		return fmt.Errorf("%w: %w", ErrEmptyInput, outcome.Err())
	}
	return nil
}
