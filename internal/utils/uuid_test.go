// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateV7(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.True(t, IsValidID(first))
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "0190a6f2-8a51-7cc1-9b3c-5a3c3b6f1e2d", want: true},
		{id: "0190A6F2-8A51-7CC1-9B3C-5A3C3B6F1E2D", want: true},
		{id: "", want: false},
		{id: "12", want: false},
		{id: "0190a6f28a517cc19b3c5a3c3b6f1e2d", want: false},
		{id: "{0190a6f2-8a51-7cc1-9b3c-5a3c3b6f1e2d}", want: false},
		{id: "urn:uuid:0190a6f2-8a51-7cc1-9b3c-5a3c3b6f1e2d", want: false},
		{id: "0190a6f2-8a51-7cc1-9b3c-5a3c3b6f1e2g", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidID(tt.id))
		})
	}
}
