// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Outcome is the result of validating a payload: either accepted or
// rejected with the set of missing fields.
type Outcome struct {
	missing []string
}

// Accepted is the outcome of a payload with every required field present.
func Accepted() Outcome {
	return Outcome{}
}

// Rejected is the outcome of a payload missing the given fields.
func Rejected(fields ...string) Outcome {
	return Outcome{missing: fields}
}

func (o Outcome) IsAccepted() bool {
	return len(o.missing) == 0
}

// MissingFields returns the JSON names of the missing fields in declaration
// order.
func (o Outcome) MissingFields() []string {
	return o.missing
}

// Err returns nil for an accepted outcome and a *MissingFieldsError
// otherwise.
func (o Outcome) Err() error {
	if o.IsAccepted() {
		return nil
	}
	return &MissingFieldsError{Fields: o.missing}
}
