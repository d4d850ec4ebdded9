// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the email/password pair submitted to the registration and
// login endpoints as form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordUpdateRequest is submitted to redeem a reset token.
type PasswordUpdateRequest struct {
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}
