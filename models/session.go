// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session binds an opaque session identifier to a user for a bounded or
// unbounded time window. The window itself is a property of the store that
// issued the session, not of the session.
type Session struct {
	// SessionID is the opaque random token handed to the client as a cookie.
	SessionID string `json:"session_id"`

	// UserID references User.ID.
	UserID string `json:"user_id"`

	// CreatedAt is the issue time used for expiry checks.
	CreatedAt time.Time `json:"created_at"`
}

// ExpiresAt reports the last instant at which the session is still valid for
// the given window. The second return value is false when the window is not
// positive, meaning the session never expires.
func (s Session) ExpiresAt(window time.Duration) (time.Time, bool) {
	if window <= 0 {
		return time.Time{}, false
	}
	return s.CreatedAt.Add(window), true
}
