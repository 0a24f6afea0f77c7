// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/models"
)

const (
	usersTable     = "users"
	employeesTable = "employees"
)

var (
	userColumns = []string{"id", "username", "email", "password", "created_at", "updated_at"}

	employeeColumns = []string{
		"id", "first_name", "last_name", "email", "position",
		"salary", "date_of_joining", "department", "created_at", "updated_at",
	}
)

// queryBuilder renders every statement the repositories run, with the
// placeholder format of the connected dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(dialect string) queryBuilder {
	var format sq.PlaceholderFormat = sq.Dollar
	if dialect == config.DriverSQLite {
		format = sq.Question
	}

	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q queryBuilder) insertUser(user models.User) (string, []any, error) {
	return q.sb.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.Password, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func (q queryBuilder) selectUserByEmail(email string) (string, []any, error) {
	return q.sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func (q queryBuilder) selectEmployees() (string, []any, error) {
	return q.sb.Select(employeeColumns...).
		From(employeesTable).
		OrderBy("created_at", "id").
		ToSql()
}

func (q queryBuilder) selectEmployeeByID(id string) (string, []any, error) {
	return q.sb.Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queryBuilder) insertEmployee(e models.Employee) (string, []any, error) {
	return q.sb.Insert(employeesTable).
		Columns(employeeColumns...).
		Values(e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Position,
			e.Salary, e.DateOfJoining, e.Department, e.CreatedAt, e.UpdatedAt).
		ToSql()
}

// updateEmployee sets every non-nil field of update plus updated_at.
func (q queryBuilder) updateEmployee(update models.EmployeeUpdate, updatedAt any) (string, []any, error) {
	b := q.sb.Update(employeesTable)

	if update.FirstName != nil {
		b = b.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		b = b.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.Position != nil {
		b = b.Set("position", *update.Position)
	}
	if update.Salary != nil {
		b = b.Set("salary", *update.Salary)
	}
	if update.DateOfJoining != nil {
		b = b.Set("date_of_joining", *update.DateOfJoining)
	}
	if update.Department != nil {
		b = b.Set("department", *update.Department)
	}

	return b.Set("updated_at", updatedAt).
		Where(sq.Eq{"id": update.EmployeeID}).
		ToSql()
}

func (q queryBuilder) deleteEmployee(id string) (string, []any, error) {
	return q.sb.Delete(employeesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
