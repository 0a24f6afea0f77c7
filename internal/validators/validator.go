// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-staff-keeper/internal/utils"
)

// InputValidator is a [Validator] driven by `validate:"required"` tags.
// Required payload fields are declared as pointers so that absent and null
// values decode to nil while empty strings stay non-nil.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() *InputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &InputValidator{validate: v}
}

func (v *InputValidator) Validate(payload any) (Outcome, error) {
	if !isStruct(payload) {
		return Outcome{}, fmt.Errorf("%w: %T", ErrUnsupportedType, payload)
	}

	err := v.validate.Struct(payload)
	if err == nil {
		return Accepted(), nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return Outcome{}, fmt.Errorf("error validating %T: %w", payload, err)
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		missing = append(missing, fe.Field())
	}

	return Rejected(missing...), nil
}

func (v *InputValidator) ValidateID(id string) error {
	if !utils.IsValidID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func isStruct(payload any) bool {
	t := reflect.TypeOf(payload)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(payload).IsNil() {
			return false
		}
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
