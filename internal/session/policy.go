// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"time"

	"github.com/MKhiriev/go-session-auth/models"
	"github.com/google/uuid"
)

// ExpiryPolicy decides whether a session is still valid. A non-positive
// Window means sessions never expire.
type ExpiryPolicy struct {
	Window time.Duration
}

// Expired reports whether s is past its window at now. The last instant of
// the window is still valid.
func (p ExpiryPolicy) Expired(s models.Session, now time.Time) bool {
	expiresAt, ok := s.ExpiresAt(p.Window)
	return ok && now.After(expiresAt)
}

// options are shared by all store constructors.
type options struct {
	now   func() time.Time
	newID func() string
}

// Option customizes a store.
type Option func(*options)

// WithClock replaces the clock used for creation times and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func newOptions(opts []Option) options {
	o := options{
		now: func() time.Time {
			return time.Now().UTC()
		},
		// random (version 4) UUIDs read from crypto/rand
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
