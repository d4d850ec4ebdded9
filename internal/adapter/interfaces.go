// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the session authentication API.
//
// The primary abstraction is [APIClient]. The package ships an HTTP/REST
// implementation ([NewHTTPAPIClient]) that keeps the session cookie between
// calls, the same way a browser would.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on them
// (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

// APIClient talks to the session authentication API on behalf of one user
// agent. Implementations hold the session cookie issued by Login and attach
// it to every following request until Logout clears it.
type APIClient interface {
	// Status calls the health endpoint.
	Status(ctx context.Context) (models.StatusResponse, error)

	// Register creates a new account.
	Register(ctx context.Context, credentials models.Credentials) (models.MessageResponse, error)

	// Login opens a session and stores its cookie.
	Login(ctx context.Context, credentials models.Credentials) (models.MessageResponse, error)

	// Profile returns the email of the user bound to the current session.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// Me returns the user bound to the current session.
	Me(ctx context.Context) (models.User, error)

	// Logout destroys the current session. The server answers with a
	// redirect, which is treated as success.
	Logout(ctx context.Context) error

	// ResetToken requests a password reset token for email.
	ResetToken(ctx context.Context, email string) (models.ResetTokenResponse, error)

	// UpdatePassword redeems a reset token.
	UpdatePassword(ctx context.Context, req models.PasswordUpdateRequest) (models.MessageResponse, error)

	// SessionID returns the session cookie value currently held, or "".
	SessionID() string

	// SetSessionID replaces the held session cookie value.
	// An empty id drops the cookie.
	SetSessionID(id string)
}
