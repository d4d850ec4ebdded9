// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// It is owned by the credential store and mutated on registration, login,
// logout and password reset.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	ID string `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// HashedPassword stores the password digest produced by the password
	// hasher. Never plaintext, never serialized.
	HashedPassword string `json:"-"`

	// SessionID is the session currently bound to the user by the
	// database-backed session store. Empty when no session is live.
	SessionID string `json:"-"`

	// SessionCreatedAt is the moment SessionID was issued.
	// Nil when SessionID is empty.
	SessionCreatedAt *time.Time `json:"-"`

	// ResetToken is the outstanding one-time password reset token.
	// Empty when no reset is pending.
	ResetToken string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
