// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the JSON body returned by endpoints that confirm an
// action on behalf of a user (registration, login, password update).
type MessageResponse struct {
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// ProfileResponse is returned by the profile endpoint.
type ProfileResponse struct {
	Email string `json:"email"`
}

// ResetTokenResponse carries a freshly issued password reset token.
type ResetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// StatusResponse is returned by the health endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the generic body written for every failed request.
// It never carries internal error details.
type ErrorResponse struct {
	Error string `json:"error"`
}
