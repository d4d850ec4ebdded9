// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

const basicPrefix = "Basic "

// BasicAuth authenticates every request with an "Authorization: Basic"
// header carrying base64("email:password").
type BasicAuth struct {
	pathRule
	users  store.UserRepository
	hasher crypto.PasswordHasher
}

func NewBasicAuth(users store.UserRepository, hasher crypto.PasswordHasher) *BasicAuth {
	return &BasicAuth{users: users, hasher: hasher}
}

// ExtractCredentials returns the raw "Authorization" header value.
func (b *BasicAuth) ExtractCredentials(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	return header, header != ""
}

func (b *BasicAuth) CurrentIdentity(r *http.Request) (models.User, error) {
	log := logger.FromRequest(r)

	header, ok := b.ExtractCredentials(r)
	if !ok {
		return models.User{}, ErrNoIdentity
	}

	email, password, err := parseBasicCredentials(header)
	if err != nil {
		log.Debug().Err(err).Str("func", "*BasicAuth.CurrentIdentity").Msg("rejected authorization header")
		return models.User{}, fmt.Errorf("%w: %w", ErrNoIdentity, err)
	}

	user, err := b.users.FindUserByEmail(r.Context(), email)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrNoIdentity
	case err != nil:
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	if !b.hasher.Verify(user.HashedPassword, password) {
		return models.User{}, ErrNoIdentity
	}

	return user, nil
}

// parseBasicCredentials decodes the value of a Basic "Authorization" header.
// The password is everything after the first ":" and may itself contain ":".
func parseBasicCredentials(header string) (email, password string, err error) {
	encoded, ok := strings.CutPrefix(header, basicPrefix)
	if !ok {
		return "", "", ErrInvalidAuthorizationHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !utf8.Valid(decoded) {
		return "", "", ErrInvalidBase64Credentials
	}

	email, password, ok = strings.Cut(string(decoded), ":")
	if !ok || email == "" {
		return "", "", ErrMalformedCredentials
	}

	return email, password, nil
}
