// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testUserRepositoryContract exercises the behaviour every UserRepository
// implementation must share.
func testUserRepositoryContract(t *testing.T, newRepo func(t *testing.T) UserRepository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	newUser := func(id, email string) models.User {
		return models.User{ID: id, Email: email, HashedPassword: "digest-" + id, CreatedAt: now}
	}

	t.Run("create and find", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateUser(ctx, newUser("u-1", "bob@hbtn.io"))
		require.NoError(t, err)

		byEmail, err := repo.FindUserByEmail(ctx, "bob@hbtn.io")
		require.NoError(t, err)
		assert.Equal(t, "u-1", byEmail.ID)
		assert.Equal(t, "digest-u-1", byEmail.HashedPassword)
		assert.True(t, byEmail.CreatedAt.Equal(now))

		byID, err := repo.FindUserByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "bob@hbtn.io", byID.Email)

		_, err = repo.FindUserByEmail(ctx, "alice@hbtn.io")
		assert.ErrorIs(t, err, ErrUserNotFound)
		_, err = repo.FindUserByID(ctx, "")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateUser(ctx, newUser("u-1", "bob@hbtn.io"))
		require.NoError(t, err)

		_, err = repo.CreateUser(ctx, newUser("u-2", "bob@hbtn.io"))
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("session lifecycle", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateUser(ctx, newUser("u-1", "bob@hbtn.io"))
		require.NoError(t, err)

		require.NoError(t, repo.SetSession(ctx, "u-1", "s-1", now))
		found, err := repo.FindUserBySessionID(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", found.ID)
		require.NotNil(t, found.SessionCreatedAt)
		assert.True(t, found.SessionCreatedAt.Equal(now))

		// a new session replaces the old one
		require.NoError(t, repo.SetSession(ctx, "u-1", "s-2", now))
		_, err = repo.FindUserBySessionID(ctx, "s-1")
		assert.ErrorIs(t, err, ErrUserNotFound)

		ok, err := repo.ClearSession(ctx, "s-2")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ClearSession(ctx, "s-2")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = repo.FindUserBySessionID(ctx, "s-2")
		assert.ErrorIs(t, err, ErrUserNotFound)

		assert.ErrorIs(t, repo.SetSession(ctx, "missing", "s-3", now), ErrUserNotFound)
	})

	t.Run("reset token lifecycle", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateUser(ctx, newUser("u-1", "bob@hbtn.io"))
		require.NoError(t, err)

		require.NoError(t, repo.SetResetToken(ctx, "u-1", "r-1"))
		found, err := repo.FindUserByResetToken(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", found.ID)

		require.NoError(t, repo.ResetPassword(ctx, "r-1", "new-digest"))
		assert.ErrorIs(t, repo.ResetPassword(ctx, "r-1", "other"), ErrUserNotFound)

		found, err = repo.FindUserByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "new-digest", found.HashedPassword)
		assert.Empty(t, found.ResetToken)

		assert.ErrorIs(t, repo.SetResetToken(ctx, "missing", "r-2"), ErrUserNotFound)
	})

	t.Run("concurrent registrations", func(t *testing.T) {
		repo := newRepo(t)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := repo.CreateUser(ctx, newUser(fmt.Sprintf("u-%d", i), fmt.Sprintf("user%d@hbtn.io", i)))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		for i := 0; i < 10; i++ {
			_, err := repo.FindUserByEmail(ctx, fmt.Sprintf("user%d@hbtn.io", i))
			assert.NoError(t, err)
		}
	})
}

func TestMemoryUserRepository_Contract(t *testing.T) {
	testUserRepositoryContract(t, func(t *testing.T) UserRepository {
		return NewMemoryUserRepository()
	})
}

func TestSQLiteUserRepository_Contract(t *testing.T) {
	testUserRepositoryContract(t, func(t *testing.T) UserRepository {
		storages, err := NewStorages(context.Background(), config.Storage{
			DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
		}, logger.Nop())
		if err != nil {
			t.Skipf("sqlite is unavailable: %v", err)
		}
		t.Cleanup(func() { storages.Close() })

		return storages.UserRepository
	})
}

func TestNewStorages_Memory(t *testing.T) {
	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: config.DriverMemory}}, logger.Nop())
	require.NoError(t, err)

	assert.Nil(t, storages.DB)
	assert.NotNil(t, storages.UserRepository)
	assert.NoError(t, storages.Close())
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mysql"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
