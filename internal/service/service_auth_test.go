// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/mock"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs struct {
	id string
}

func (f fixedIDs) Generate() string { return f.id }

type authDeps struct {
	users    *mock.MockUserRepository
	sessions *mock.MockStore
	hasher   *mock.MockPasswordHasher
}

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestAuthSvc(t *testing.T) (*authService, authDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := authDeps{
		users:    mock.NewMockUserRepository(ctrl),
		sessions: mock.NewMockStore(ctrl),
		hasher:   mock.NewMockPasswordHasher(ctrl),
	}

	svc := NewAuthService(deps.users, deps.sessions, deps.hasher, fixedIDs{id: "u-1"}, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	return svc, deps
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		want := models.User{ID: "u-1", Email: "bob@me.com", HashedPassword: "digest", CreatedAt: fixedNow}
		deps.hasher.EXPECT().Hash("pwd").Return("digest", nil)
		deps.users.EXPECT().CreateUser(ctx, want).Return(want, nil)

		got, err := svc.Register(ctx, "bob@me.com", "pwd")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	for name, in := range map[string][2]string{
		"empty email":    {"", "pwd"},
		"empty password": {"bob@me.com", ""},
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestAuthSvc(t)
			_, err := svc.Register(ctx, in[0], in[1])
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.hasher.EXPECT().Hash("pwd").Return("digest", nil)
		deps.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := svc.Register(ctx, "bob@me.com", "pwd")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("password too long", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

		_, err := svc.Register(ctx, "bob@me.com", "x")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.hasher.EXPECT().Hash("pwd").Return("digest", nil)
		deps.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, errors.New("db down"))

		_, err := svc.Register(ctx, "bob@me.com", "pwd")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrConflict)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := models.User{ID: "u-1", Email: "bob@me.com", HashedPassword: "digest"}

	t.Run("success", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.users.EXPECT().FindUserByEmail(ctx, "bob@me.com").Return(user, nil)
		deps.hasher.EXPECT().Verify("digest", "pwd").Return(true)
		deps.sessions.EXPECT().Create(ctx, "u-1").Return("s-1", nil)

		got, sessionID, err := svc.Login(ctx, "bob@me.com", "pwd")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Equal(t, "s-1", sessionID)
	})

	t.Run("empty fields", func(t *testing.T) {
		svc, _ := newTestAuthSvc(t)
		_, _, err := svc.Login(ctx, "bob@me.com", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.users.EXPECT().FindUserByEmail(ctx, "ghost@me.com").Return(models.User{}, store.ErrUserNotFound)

		_, _, err := svc.Login(ctx, "ghost@me.com", "pwd")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.users.EXPECT().FindUserByEmail(ctx, "bob@me.com").Return(user, nil)
		deps.hasher.EXPECT().Verify("digest", "nope").Return(false)

		_, _, err := svc.Login(ctx, "bob@me.com", "nope")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("session store failure", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.users.EXPECT().FindUserByEmail(ctx, "bob@me.com").Return(user, nil)
		deps.hasher.EXPECT().Verify("digest", "pwd").Return(true)
		deps.sessions.EXPECT().Create(ctx, "u-1").Return("", errors.New("redis down"))

		_, _, err := svc.Login(ctx, "bob@me.com", "pwd")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.sessions.EXPECT().Resolve(ctx, "s-1").Return("u-1", nil)
		deps.sessions.EXPECT().Destroy(ctx, "s-1").Return(true, nil)

		assert.NoError(t, svc.Logout(ctx, "s-1"))
	})

	t.Run("empty session id", func(t *testing.T) {
		svc, _ := newTestAuthSvc(t)
		assert.ErrorIs(t, svc.Logout(ctx, ""), ErrForbidden)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.sessions.EXPECT().Resolve(ctx, "s-x").Return("", session.ErrSessionNotFound)

		assert.ErrorIs(t, svc.Logout(ctx, "s-x"), ErrForbidden)
	})

	t.Run("destroyed concurrently", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.sessions.EXPECT().Resolve(ctx, "s-1").Return("u-1", nil)
		deps.sessions.EXPECT().Destroy(ctx, "s-1").Return(false, nil)

		assert.ErrorIs(t, svc.Logout(ctx, "s-1"), ErrForbidden)
	})
}

func TestAuthService_UserFromSession(t *testing.T) {
	ctx := context.Background()
	user := models.User{ID: "u-1", Email: "bob@me.com"}

	t.Run("success", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.sessions.EXPECT().Resolve(ctx, "s-1").Return("u-1", nil)
		deps.users.EXPECT().FindUserByID(ctx, "u-1").Return(user, nil)

		got, err := svc.UserFromSession(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.sessions.EXPECT().Resolve(ctx, "s-x").Return("", session.ErrSessionNotFound)

		_, err := svc.UserFromSession(ctx, "s-x")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("user gone", func(t *testing.T) {
		svc, deps := newTestAuthSvc(t)
		deps.sessions.EXPECT().Resolve(ctx, "s-1").Return("u-1", nil)
		deps.users.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.UserFromSession(ctx, "s-1")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
