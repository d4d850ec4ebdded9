// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid data provided")
	ErrConflict             = errors.New("email already registered")
	ErrAuthenticationFailed = errors.New("wrong email or password")
	ErrUnauthenticated      = errors.New("not authenticated")
	ErrForbidden            = errors.New("forbidden")

	ErrUnknownUser  = errors.New("unknown user")
	ErrInvalidToken = errors.New("invalid reset token")
)
