// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
)

// NewStore builds the session backend selected by cfg.Auth.SessionStore.
// A [RedisStore] owns its client; callers close it through io.Closer.
func NewStore(ctx context.Context, cfg *config.StructuredConfig, users store.UserRepository, log *logger.Logger) (Store, error) {
	policy := ExpiryPolicy{Window: cfg.Auth.SessionDuration}

	switch cfg.Auth.SessionStore {
	case config.SessionStoreMemory, "":
		log.Info().Str("func", "session.NewStore").Dur("window", policy.Window).Msg("using in-memory session store")
		return NewMemoryStore(policy), nil
	case config.SessionStoreDatabase:
		log.Info().Str("func", "session.NewStore").Dur("window", policy.Window).Msg("using database session store")
		return NewDatabaseStore(users, policy), nil
	case config.SessionStoreRedis:
		client, err := NewRedisClient(ctx, cfg.Storage.Redis)
		if err != nil {
			log.Err(err).Str("func", "session.NewStore").Msg("error connecting redis")
			return nil, err
		}
		log.Info().Str("func", "session.NewStore").Dur("window", policy.Window).Msg("using redis session store")
		return NewRedisStore(client, cfg.Storage.Redis.Prefix, policy), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Auth.SessionStore)
	}
}
