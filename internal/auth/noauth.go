// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/models"
)

// NoAuth never finds credentials, so the gate answers 401 on every path that
// is not excluded.
type NoAuth struct {
	pathRule
}

func NewNoAuth() *NoAuth {
	return &NoAuth{}
}

func (*NoAuth) ExtractCredentials(*http.Request) (string, bool) {
	return "", false
}

func (*NoAuth) CurrentIdentity(*http.Request) (models.User, error) {
	return models.User{}, ErrNoIdentity
}
