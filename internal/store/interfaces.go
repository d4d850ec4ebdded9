// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store. It owns user records together
// with the session and reset-token columns attached to them.
//
// Lookups that match nothing return [ErrUserNotFound].
type UserRepository interface {
	// CreateUser persists a new user. Returns [ErrEmailAlreadyExists] when
	// the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserBySessionID(ctx context.Context, sessionID string) (models.User, error)
	FindUserByResetToken(ctx context.Context, token string) (models.User, error)

	// SetSession attaches sessionID to the user, replacing any prior session.
	SetSession(ctx context.Context, userID, sessionID string, createdAt time.Time) error

	// ClearSession detaches sessionID from whichever user holds it and
	// reports whether a user held it.
	ClearSession(ctx context.Context, sessionID string) (bool, error)

	// SetResetToken stores token on the user, replacing any prior token.
	SetResetToken(ctx context.Context, userID, token string) error

	// ResetPassword replaces the password digest of the user holding token
	// and clears the token in the same statement. Returns
	// [ErrUserNotFound] when no user holds token.
	ResetPassword(ctx context.Context, token, hashedPassword string) error
}
