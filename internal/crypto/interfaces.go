// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks one-way password digests.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted digest of password suitable for storage.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A malformed digest is
	// treated as a mismatch.
	Verify(digest, password string) bool
}
