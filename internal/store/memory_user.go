// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
)

// memoryUserRepository is an in-process [UserRepository]. Users live in a
// map keyed by id; email, session and reset-token lookups scan it under a
// read lock. Suitable for development and tests only.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]models.User),
	}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}
	if _, ok := m.findLocked(func(u models.User) bool { return u.Email == user.Email }); ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.users[user.ID] = user
	return user, nil
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if user, ok := m.users[id]; ok && id != "" {
		return user, nil
	}
	return models.User{}, ErrUserNotFound
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	return m.find(email, func(u models.User) bool { return u.Email == email })
}

func (m *memoryUserRepository) FindUserBySessionID(_ context.Context, sessionID string) (models.User, error) {
	return m.find(sessionID, func(u models.User) bool { return u.SessionID == sessionID })
}

func (m *memoryUserRepository) FindUserByResetToken(_ context.Context, token string) (models.User, error) {
	return m.find(token, func(u models.User) bool { return u.ResetToken == token })
}

func (m *memoryUserRepository) SetSession(_ context.Context, userID, sessionID string, createdAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	user.SessionID = sessionID
	user.SessionCreatedAt = &createdAt
	m.users[userID] = user
	return nil
}

func (m *memoryUserRepository) ClearSession(_ context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.findLocked(func(u models.User) bool { return u.SessionID == sessionID })
	if !ok {
		return false, nil
	}

	user.SessionID = ""
	user.SessionCreatedAt = nil
	m.users[user.ID] = user
	return true, nil
}

func (m *memoryUserRepository) SetResetToken(_ context.Context, userID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	user.ResetToken = token
	m.users[userID] = user
	return nil
}

func (m *memoryUserRepository) ResetPassword(_ context.Context, token, hashedPassword string) error {
	if token == "" {
		return ErrUserNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.findLocked(func(u models.User) bool { return u.ResetToken == token })
	if !ok {
		return ErrUserNotFound
	}

	user.HashedPassword = hashedPassword
	user.ResetToken = ""
	m.users[user.ID] = user
	return nil
}

func (m *memoryUserRepository) find(key string, match func(models.User) bool) (models.User, error) {
	if key == "" {
		return models.User{}, ErrUserNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if user, ok := m.findLocked(match); ok {
		return user, nil
	}
	return models.User{}, ErrUserNotFound
}

// findLocked must be called with m.mu held.
func (m *memoryUserRepository) findLocked(match func(models.User) bool) (models.User, bool) {
	for _, user := range m.users {
		if match(user) {
			return user, true
		}
	}
	return models.User{}, false
}
