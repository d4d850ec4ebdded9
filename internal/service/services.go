// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
}

func NewServices(storages *store.Storages, sessions session.Store, hasher crypto.PasswordHasher, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, sessions, hasher, ids, logger),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, hasher, ids, logger),
	}
}
