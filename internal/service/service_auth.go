// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the session
// lifecycle, using a UserRepository for persistence, a session.Store for
// sessions and a PasswordHasher for password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions issues, resolves and destroys login sessions.
	sessions session.Store

	hasher crypto.PasswordHasher

	// ids generates identifiers of newly registered users.
	ids IDGenerator

	// now is the clock used for CreatedAt timestamps.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessions session.Store, hasher crypto.PasswordHasher, ids IDGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		hasher:         hasher,
		ids:            ids,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidInput if email or password is empty or the password is too
//     long to hash.
//   - ErrConflict if the email is already registered.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("func", "*authService.Register").Msg("invalid user data provided")
		return models.User{}, ErrInvalidInput
	}

	digest, err := a.hasher.Hash(password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		log.Err(err).Str("func", "*authService.Register").Msg("password rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:             a.ids.Generate(),
		Email:          email,
		HashedPassword: digest,
		CreatedAt:      a.now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Err(err).Str("func", "*authService.Register").Str("email", email).Msg("email already registered")
		return models.User{}, ErrConflict
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login checks the credentials and opens a new session for the user,
// replacing the session the user held before.
//
// Returns the authenticated user with the session id or:
//   - ErrInvalidInput if email or password is empty.
//   - ErrAuthenticationFailed if the email is unknown or the password does
//     not match.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("func", "*authService.Login").Msg("invalid user data provided")
		return models.User{}, "", ErrInvalidInput
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*authService.Login").Str("email", email).Msg("unknown email")
		return models.User{}, "", ErrAuthenticationFailed
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("email", email).Msg("user search by email failed")
		return models.User{}, "", fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(foundUser.HashedPassword, password) {
		log.Error().Str("func", "*authService.Login").Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, "", ErrAuthenticationFailed
	}

	sessionID, err := a.sessions.Create(ctx, foundUser.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("id", foundUser.ID).Msg("error creating session")
		return models.User{}, "", fmt.Errorf("error creating session: %w", err)
	}

	return foundUser, sessionID, nil
}

// Logout destroys the session. Returns ErrForbidden when the session id is
// empty or does not resolve to a user.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := a.resolve(ctx, sessionID); err != nil {
		return err
	}

	destroyed, err := a.sessions.Destroy(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("error destroying session")
		return fmt.Errorf("error destroying session: %w", err)
	}
	if !destroyed {
		return ErrForbidden
	}

	return nil
}

// UserFromSession returns the user owning the session, or ErrForbidden when
// the session is unknown, expired or its user is gone.
func (a *authService) UserFromSession(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := a.resolve(ctx, sessionID)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrForbidden
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.UserFromSession").Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (a *authService) resolve(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrForbidden
	}

	userID, err := a.sessions.Resolve(ctx, sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return "", ErrForbidden
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.resolve").Msg("error resolving session")
		return "", fmt.Errorf("error resolving session: %w", err)
	}

	return userID, nil
}
