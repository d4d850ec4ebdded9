// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
)

// passwordResetService issues single-use reset tokens and redeems them.
type passwordResetService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokens         IDGenerator
	logger         *logger.Logger
}

func NewPasswordResetService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens IDGenerator, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// IssueToken stores a fresh reset token on the user with the given email,
// overwriting any earlier token, and returns it.
func (p *passwordResetService) IssueToken(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return "", ErrInvalidInput
	}

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*passwordResetService.IssueToken").Str("email", email).Msg("unknown email")
		return "", ErrUnknownUser
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.IssueToken").Str("email", email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	token := p.tokens.Generate()
	if err = p.userRepository.SetResetToken(ctx, user.ID, token); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrUnknownUser
		}
		log.Err(err).Str("func", "*passwordResetService.IssueToken").Str("id", user.ID).Msg("error saving reset token")
		return "", fmt.Errorf("error saving reset token: %w", err)
	}

	return token, nil
}

// Redeem replaces the password of the user holding token and invalidates the
// token, so a second redeem with the same token fails with ErrInvalidToken.
// Unknown tokens are rejected before the new password is hashed; the update
// itself still matches on the token, so a concurrent redeem loses cleanly.
func (p *passwordResetService) Redeem(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrInvalidToken
	}
	if newPassword == "" {
		return ErrInvalidInput
	}

	user, err := p.userRepository.FindUserByResetToken(ctx, token)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*passwordResetService.Redeem").Msg("reset token does not match any user")
		return ErrInvalidToken
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.Redeem").Msg("user search by reset token failed")
		return fmt.Errorf("user search by reset token failed: %w", err)
	}

	digest, err := p.hasher.Hash(newPassword)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.Redeem").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = p.userRepository.ResetPassword(ctx, token, digest)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*passwordResetService.Redeem").Str("id", user.ID).Msg("reset token redeemed concurrently")
		return ErrInvalidToken
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.Redeem").Str("id", user.ID).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	log.Info().Str("func", "*passwordResetService.Redeem").Str("id", user.ID).Msg("password reset")
	return nil
}
