// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

// DatabaseStore keeps sessions on the user records of the credential store,
// so they survive restarts. Each user holds at most one session.
type DatabaseStore struct {
	users  store.UserRepository
	policy ExpiryPolicy
	opts   options
}

// NewDatabaseStore constructs a [DatabaseStore] on top of users.
func NewDatabaseStore(users store.UserRepository, policy ExpiryPolicy, opts ...Option) *DatabaseStore {
	return &DatabaseStore{
		users:  users,
		policy: policy,
		opts:   newOptions(opts),
	}
}

func (d *DatabaseStore) Create(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidUserID
	}

	id := d.opts.newID()
	err := d.users.SetSession(ctx, userID, id, d.opts.now())
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "", ErrInvalidUserID
	case err != nil:
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return id, nil
}

func (d *DatabaseStore) Resolve(ctx context.Context, sessionID string) (string, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return "", ErrSessionNotFound
	}

	user, err := d.users.FindUserBySessionID(ctx, sessionID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "", ErrSessionNotFound
	case err != nil:
		return "", fmt.Errorf("error resolving session: %w", err)
	}

	s := models.Session{SessionID: sessionID, UserID: user.ID}
	if user.SessionCreatedAt != nil {
		s.CreatedAt = *user.SessionCreatedAt
	} else if d.policy.Window > 0 {
		// no issue time means the lifetime cannot be checked
		return "", ErrSessionNotFound
	}

	if d.policy.Expired(s, d.opts.now()) {
		if _, err = d.users.ClearSession(ctx, sessionID); err != nil {
			log.Warn().Err(err).Str("func", "*DatabaseStore.Resolve").Msg("error clearing expired session")
		}
		return "", ErrSessionNotFound
	}

	return user.ID, nil
}

func (d *DatabaseStore) Destroy(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	ok, err := d.users.ClearSession(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("error destroying session: %w", err)
	}
	return ok, nil
}
