// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-session-auth/models"
)

// MemoryStore is a process-local [Store]. Sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	// byUser maps a user to the session it currently holds.
	byUser map[string]string

	policy ExpiryPolicy
	opts   options
}

// NewMemoryStore constructs an empty [MemoryStore] with the given policy.
func NewMemoryStore(policy ExpiryPolicy, opts ...Option) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		byUser:   make(map[string]string),
		policy:   policy,
		opts:     newOptions(opts),
	}
}

func (m *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.byUser[userID]; ok {
		delete(m.sessions, prev)
	}

	id := m.opts.newID()
	for _, taken := m.sessions[id]; taken; _, taken = m.sessions[id] {
		id = m.opts.newID()
	}

	m.sessions[id] = models.Session{SessionID: id, UserID: userID, CreatedAt: m.opts.now()}
	m.byUser[userID] = id

	return id, nil
}

func (m *MemoryStore) Resolve(_ context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrSessionNotFound
	}

	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok || m.policy.Expired(s, m.opts.now()) {
		return "", ErrSessionNotFound
	}
	return s.UserID, nil
}

func (m *MemoryStore) Destroy(_ context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return false, nil
	}

	m.removeLocked(s)
	return true, nil
}

// PurgeExpired drops every expired session and returns how many were
// removed. Resolve already hides expired sessions; purging only bounds
// memory.
func (m *MemoryStore) PurgeExpired(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.opts.now()
	purged := 0
	for _, s := range m.sessions {
		if err := ctx.Err(); err != nil {
			return purged, err
		}
		if m.policy.Expired(s, now) {
			m.removeLocked(s)
			purged++
		}
	}
	return purged, nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// removeLocked must be called with m.mu held for writing.
func (m *MemoryStore) removeLocked(s models.Session) {
	delete(m.sessions, s.SessionID)
	if m.byUser[s.UserID] == s.SessionID {
		delete(m.byUser, s.UserID)
	}
}
