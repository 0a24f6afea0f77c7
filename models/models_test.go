package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_PasswordIsDirty(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "secret")

	assert.True(t, u.PasswordDirty())
	assert.Equal(t, "secret", u.Password)
}

func TestUser_SetEncodedPassword_ClearsDirtyFlag(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "secret")

	u.SetEncodedPassword("$2a$10$encoded")

	assert.False(t, u.PasswordDirty())
	assert.Equal(t, "$2a$10$encoded", u.Password)

	u.SetPassword("another")
	assert.True(t, u.PasswordDirty())
}

func TestUser_PasswordIsNotSerialized(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "secret")

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: `"2023-04-05"`, want: "2023-04-05"},
		{name: "rfc3339", input: `"2023-04-05T10:11:12Z"`, want: "2023-04-05"},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
		{name: "number", input: `20230405`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(b))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2022, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2022-01-02", d.String())

	require.NoError(t, d.Scan("2021-12-31 00:00:00+00:00"))
	assert.Equal(t, "2021-12-31", d.String())

	require.NoError(t, d.Scan([]byte("2020-06-15")))
	assert.Equal(t, "2020-06-15", d.String())

	assert.Error(t, d.Scan(42))
}

func TestEmployeeChanges_ToUpdate(t *testing.T) {
	var changes EmployeeChanges
	require.NoError(t, json.Unmarshal([]byte(`{
		"first_name": "Bob",
		"salary": 0,
		"department": null,
		"unknown": "ignored",
		"date_of_joining": "2020-01-01"
	}`), &changes))

	update, err := changes.ToUpdate("id-1")
	require.NoError(t, err)

	assert.Equal(t, "id-1", update.EmployeeID)
	require.NotNil(t, update.FirstName)
	assert.Equal(t, "Bob", *update.FirstName)
	require.NotNil(t, update.Salary)
	assert.Zero(t, *update.Salary)
	require.NotNil(t, update.DateOfJoining)
	assert.Equal(t, "2020-01-01", update.DateOfJoining.String())
	assert.Nil(t, update.Department)
	assert.Nil(t, update.LastName)
	assert.False(t, update.Empty())
}

func TestEmployeeChanges_ToUpdate_WrongType(t *testing.T) {
	changes := EmployeeChanges{"salary": json.RawMessage(`"a lot"`)}

	_, err := changes.ToUpdate("id-1")
	assert.Error(t, err)
}

func TestEmployeeChanges_ToUpdate_OnlyUnknownKeys(t *testing.T) {
	changes := EmployeeChanges{"nickname": json.RawMessage(`"bobby"`)}

	update, err := changes.ToUpdate("id-1")
	require.NoError(t, err)
	assert.True(t, update.Empty())
}

func TestEmployeeRequest_Employee(t *testing.T) {
	first, last, email, pos, dep := "Ann", "Lee", "ann@example.com", "QA", "R&D"
	salary := 1200.5
	date := NewDate(time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC))

	req := EmployeeRequest{
		FirstName: &first, LastName: &last, Email: &email, Position: &pos,
		Salary: &salary, DateOfJoining: &date, Department: &dep,
	}

	e := req.Employee()
	assert.Equal(t, "Ann", e.FirstName)
	assert.Equal(t, 1200.5, e.Salary)
	assert.Equal(t, "2019-05-01", e.DateOfJoining.String())
	assert.Empty(t, e.EmployeeID)
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Contains(t, info.String(), "Build commit: N/A")
}
