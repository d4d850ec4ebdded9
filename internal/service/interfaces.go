// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	UserFromSession(ctx context.Context, sessionID string) (models.User, error)
}

type PasswordResetService interface {
	IssueToken(ctx context.Context, email string) (string, error)
	Redeem(ctx context.Context, token, newPassword string) error
}

// IDGenerator produces unique identifiers for users and reset tokens.
type IDGenerator interface {
	Generate() string
}
