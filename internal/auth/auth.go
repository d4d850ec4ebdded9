// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
)

// New returns the strategy named by cfg.Type. An empty type disables the
// access gate and yields a nil Strategy.
//
// The session store is chosen independently (see [session.NewStore]); the
// legacy names "session_exp_auth" and "session_db_auth" select the same
// [SessionAuth] as "session".
func New(cfg config.Auth, sessions session.Store, users store.UserRepository, hasher crypto.PasswordHasher) (Strategy, error) {
	switch cfg.Type {
	case config.AuthTypeDisabled:
		return nil, nil
	case config.AuthTypeNone, config.AuthTypeBase:
		return NewNoAuth(), nil
	case config.AuthTypeBasic, config.AuthTypeBasicLegacy:
		return NewBasicAuth(users, hasher), nil
	case config.AuthTypeSession, config.AuthTypeSessionLegacy, config.AuthTypeSessionExpiry, config.AuthTypeSessionDB:
		name := cfg.SessionName
		if name == "" {
			name = config.DefaultSessionName
		}
		return NewSessionAuth(name, sessions, users), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Type)
	}
}
