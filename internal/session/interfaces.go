// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Store issues, resolves and destroys sessions.
// Implementations must be safe for concurrent use.
type Store interface {
	// Create issues a new session for userID, replacing any session the user
	// already holds. Returns [ErrInvalidUserID] when userID is empty.
	Create(ctx context.Context, userID string) (string, error)

	// Resolve returns the user bound to sessionID. Unknown, empty and
	// expired sessions yield [ErrSessionNotFound].
	Resolve(ctx context.Context, sessionID string) (string, error)

	// Destroy removes sessionID and reports whether it existed.
	Destroy(ctx context.Context, sessionID string) (bool, error)
}
