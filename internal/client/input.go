// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// PasswordPrompt asks the user for a password.
type PasswordPrompt func(label string) (string, error)

// TerminalPrompt returns a PasswordPrompt that prints label to w and reads
// the password from stdin without echo.
func TerminalPrompt(w io.Writer) PasswordPrompt {
	return func(label string) (string, error) {
		if _, err := fmt.Fprint(w, label); err != nil {
			return "", err
		}
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return string(pw), nil
	}
}
