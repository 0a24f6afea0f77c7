// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account that can sign up and log in.
//
// Password holds the secret representation produced by the credential codec
// once the user has been persisted; it is plaintext only between [NewUser]
// (or [User.SetPassword]) and the next save. The write path checks
// [User.PasswordDirty] to decide whether the value still has to be encoded.
type User struct {
	// UserID is the store-generated identifier (UUID).
	UserID string `json:"user_id" db:"id"`

	Username string `json:"username" db:"username"`

	// Email is the login lookup key.
	Email string `json:"email" db:"email"`

	// Password is never serialized to clients.
	Password string `json:"-" db:"password"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	passwordDirty bool
}

// NewUser builds a not yet persisted user whose password is marked dirty.
func NewUser(username, email, password string) User {
	u := User{
		Username: username,
		Email:    email,
	}
	u.SetPassword(password)
	return u
}

// SetPassword replaces the password with a new plaintext value and marks it
// for encoding on the next save.
func (u *User) SetPassword(plaintext string) {
	u.Password = plaintext
	u.passwordDirty = true
}

// PasswordDirty reports whether Password holds a plaintext value that has not
// been encoded yet.
func (u *User) PasswordDirty() bool {
	return u.passwordDirty
}

// SetEncodedPassword stores the codec output and clears the dirty flag.
func (u *User) SetEncodedPassword(secret string) {
	u.Password = secret
	u.passwordDirty = false
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
