// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrSessionNotFound means the session id is empty, unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidUserID is returned by Create for an empty or unknown user.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrUnknownStore is returned by [NewStore] for an unsupported backend.
	ErrUnknownStore = errors.New("unknown session store")
)
