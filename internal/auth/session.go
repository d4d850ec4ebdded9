// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

// SessionAuth authenticates requests with a session cookie. Expiry and
// persistence are properties of the session store it is given.
type SessionAuth struct {
	pathRule
	cookieName string
	sessions   session.Store
	users      store.UserRepository
}

func NewSessionAuth(cookieName string, sessions session.Store, users store.UserRepository) *SessionAuth {
	return &SessionAuth{
		cookieName: cookieName,
		sessions:   sessions,
		users:      users,
	}
}

// CookieName is the name of the cookie carrying the session id.
func (s *SessionAuth) CookieName() string {
	return s.cookieName
}

// ExtractCredentials returns the session id from the session cookie. An
// empty cookie counts as absent.
func (s *SessionAuth) ExtractCredentials(r *http.Request) (string, bool) {
	return SessionCookie(r, s.cookieName)
}

func (s *SessionAuth) CurrentIdentity(r *http.Request) (models.User, error) {
	sessionID, ok := s.ExtractCredentials(r)
	if !ok {
		return models.User{}, ErrNoIdentity
	}

	ctx := r.Context()
	userID, err := s.sessions.Resolve(ctx, sessionID)
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return models.User{}, ErrNoIdentity
	case err != nil:
		return models.User{}, fmt.Errorf("error resolving session: %w", err)
	}

	user, err := s.users.FindUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrNoIdentity
	case err != nil:
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	return user, nil
}

// SessionCookie reads the cookie called name from r.
func SessionCookie(r *http.Request, name string) (string, bool) {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
