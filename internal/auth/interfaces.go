// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/models"
)

// Strategy is an authentication scheme.
type Strategy interface {
	// RequiresAuth reports whether path must be authenticated given the
	// excluded paths.
	RequiresAuth(path string, excluded []string) bool

	// ExtractCredentials returns the raw credential carried by r, if any.
	ExtractCredentials(r *http.Request) (string, bool)

	// CurrentIdentity resolves the user behind the credentials of r.
	// Returns [ErrNoIdentity] when the credentials do not identify a user.
	CurrentIdentity(r *http.Request) (models.User, error)
}
