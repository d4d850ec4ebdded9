// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrNoIdentity is returned by [Strategy.CurrentIdentity] when the request
	// carries no credentials or the credentials do not resolve to a user.
	ErrNoIdentity = errors.New("no identity")

	// ErrUnknownStrategy is returned by [New] for an unsupported auth type.
	ErrUnknownStrategy = errors.New("unknown auth strategy")
)

// Reasons a Basic "Authorization" header is rejected. They are wrapped into
// [ErrNoIdentity] so callers only need to match the latter.
var (
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrInvalidBase64Credentials   = errors.New("credentials are not valid base64")
	ErrMalformedCredentials       = errors.New("credentials must be `email:password`")
)
