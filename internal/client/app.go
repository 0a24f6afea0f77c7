// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-staff-keeper/internal/adapter"
	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

type App struct {
	api    adapter.StaffAPI
	prompt PasswordPrompt
	out    io.Writer
	logger *logger.Logger
}

func NewApp(api adapter.StaffAPI, prompt PasswordPrompt, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:    api,
		prompt: prompt,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	switch args[0] {
	case "signup":
		return a.signup(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "employees":
		return a.employees(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	fs := newFlagSet("signup")
	username := fs.String("username", "", "user name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	req := models.SignupRequest{
		Username: visited(fs, "username", username),
		Email:    visited(fs, "email", email),
	}
	pw, err := a.passwordFlagOrPrompt(fs, password)
	if err != nil {
		return err
	}
	req.Password = pw

	userID, err := a.api.Signup(ctx, req)
	if err != nil {
		return err
	}

	return a.printf("%s (id %s)\n", app.MsgUserCreated, userID)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	pw, err := a.passwordFlagOrPrompt(fs, password)
	if err != nil {
		return err
	}

	if err = a.api.Login(ctx, models.LoginRequest{Email: visited(fs, "email", email), Password: pw}); err != nil {
		return err
	}

	return a.printf("%s\n", app.MsgLoginSuccessful)
}

func (a *App) employees(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing employees subcommand", ErrUsage)
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		employees, err := a.api.ListEmployees(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(employees)
	case "get":
		id, err := singleID(rest)
		if err != nil {
			return err
		}
		employee, err := a.api.GetEmployee(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(employee)
	case "create":
		return a.createEmployee(ctx, rest)
	case "update":
		return a.updateEmployee(ctx, rest)
	case "delete":
		id, err := singleID(rest)
		if err != nil {
			return err
		}
		if err = a.api.DeleteEmployee(ctx, id); err != nil {
			return err
		}
		return a.printf("%s\n", app.MsgEmployeeDeleted)
	default:
		return fmt.Errorf("%w: unknown employees subcommand %q", ErrUsage, sub)
	}
}

// createEmployee sends only the flags that were given, leaving the required
// field check to the server.
func (a *App) createEmployee(ctx context.Context, args []string) error {
	fs := newFlagSet("employees create")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "email")
	position := fs.String("position", "", "position")
	salary := fs.Float64("salary", 0, "salary")
	date := fs.String("date", "", "date of joining, YYYY-MM-DD")
	department := fs.String("department", "", "department")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	req := models.EmployeeRequest{
		FirstName:  visited(fs, "first-name", firstName),
		LastName:   visited(fs, "last-name", lastName),
		Email:      visited(fs, "email", email),
		Position:   visited(fs, "position", position),
		Salary:     visited(fs, "salary", salary),
		Department: visited(fs, "department", department),
	}
	if d := visited(fs, "date", date); d != nil {
		joined, err := models.ParseDate(*d)
		if err != nil {
			return fmt.Errorf("%w: -date: %w", ErrUsage, err)
		}
		req.DateOfJoining = &joined
	}

	id, err := a.api.CreateEmployee(ctx, req)
	if err != nil {
		return err
	}

	return a.printf("%s (id %s)\n", app.MsgEmployeeCreated, id)
}

// updateEmployee takes the id followed by field=value pairs. A salary value
// is sent as a number, everything else as a string.
func (a *App) updateEmployee(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: employees update ID field=value...", ErrUsage)
	}

	changes := make(map[string]any, len(args)-1)
	for _, pair := range args[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("%w: expected field=value, got %q", ErrUsage, pair)
		}

		if key != "salary" {
			changes[key] = value
			continue
		}
		salary, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: salary: %w", ErrUsage, err)
		}
		changes[key] = salary
	}

	if err := a.api.UpdateEmployee(ctx, args[0], changes); err != nil {
		return err
	}

	return a.printf("%s\n", app.MsgEmployeeUpdated)
}

func (a *App) passwordFlagOrPrompt(fs *flag.FlagSet, password *string) (*string, error) {
	if pw := visited(fs, "password", password); pw != nil {
		return pw, nil
	}

	pw, err := a.prompt("Password: ")
	if err != nil {
		return nil, err
	}
	return &pw, nil
}

func (a *App) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(a.out, format, args...)
	return err
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// visited returns value if the flag was set on the command line and nil
// otherwise, so that an omitted flag is sent as a missing field.
func visited[T any](fs *flag.FlagSet, name string, value *T) *T {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return value
}

func singleID(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected exactly one employee id", ErrUsage)
	}
	return args[0], nil
}
