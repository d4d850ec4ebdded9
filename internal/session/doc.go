// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session maps opaque session identifiers to user identifiers.
//
// Three [Store] backends are provided: [MemoryStore] keeps sessions in a
// lock-guarded map, [DatabaseStore] persists them on the user records of the
// credential store, and [RedisStore] keeps them in Redis. Expiry is a
// separate [ExpiryPolicy] shared by all backends, so any backend can run with
// or without a session lifetime.
package session
