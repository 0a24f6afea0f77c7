// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staff-keeper/models"
)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestValidate_Signup(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing []string
	}{
		{name: "all present", body: `{"username":"a","email":"a@b.c","password":"p"}`},
		{name: "empty strings are present", body: `{"username":"","email":"","password":""}`},
		{name: "password absent", body: `{"username":"a","email":"a@b.c"}`, missing: []string{"password"}},
		{name: "email null", body: `{"username":"a","email":null,"password":"p"}`, missing: []string{"email"}},
		{name: "empty object", body: `{}`, missing: []string{"username", "email", "password"}},
	}

	v := NewInputValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decode[models.SignupRequest](t, tt.body)

			outcome, err := v.Validate(req)
			require.NoError(t, err)

			if tt.missing == nil {
				assert.True(t, outcome.IsAccepted())
				assert.NoError(t, outcome.Err())
				return
			}
			assert.False(t, outcome.IsAccepted())
			assert.Equal(t, tt.missing, outcome.MissingFields())
			assert.ErrorIs(t, outcome.Err(), ErrMissingFields)
		})
	}
}

func TestValidate_Login(t *testing.T) {
	v := NewInputValidator()

	outcome, err := v.Validate(decode[models.LoginRequest](t, `{"email":"a@b.c"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"password"}, outcome.MissingFields())

	outcome, err = v.Validate(decode[models.LoginRequest](t, `{"email":"a@b.c","password":""}`))
	require.NoError(t, err)
	assert.True(t, outcome.IsAccepted())
}

func TestValidate_Employee(t *testing.T) {
	v := NewInputValidator()

	full := `{"first_name":"A","last_name":"B","email":"a@b.c","position":"Dev",
		"salary":0,"date_of_joining":"2020-01-01","department":"R&D"}`
	outcome, err := v.Validate(decode[models.EmployeeRequest](t, full))
	require.NoError(t, err)
	assert.True(t, outcome.IsAccepted())

	outcome, err = v.Validate(decode[models.EmployeeRequest](t, `{"first_name":"A","salary":null}`))
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"last_name", "email", "position", "salary", "date_of_joining", "department"},
		outcome.MissingFields())
}

func TestValidate_PointerPayload(t *testing.T) {
	req := decode[models.LoginRequest](t, `{}`)

	outcome, err := NewInputValidator().Validate(&req)
	require.NoError(t, err)
	assert.Len(t, outcome.MissingFields(), 2)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewInputValidator()

	for _, payload := range []any{nil, "text", 42, (*models.LoginRequest)(nil)} {
		_, err := v.Validate(payload)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	}
}

func TestValidateID(t *testing.T) {
	v := NewInputValidator()

	assert.NoError(t, v.ValidateID("0190a6f2-8a51-7cc1-9b3c-5a3c3b6f1e2d"))

	for _, id := range []string{"", "42", "not-a-uuid", "{0190a6f2-8a51-7cc1-9b3c-5a3c3b6f1e2d}"} {
		assert.ErrorIs(t, v.ValidateID(id), ErrInvalidID, id)
	}
}

func TestMissingFieldsError_Message(t *testing.T) {
	err := Rejected("email", "password").Err()
	assert.EqualError(t, err, "required fields are missing: email, password")
}
