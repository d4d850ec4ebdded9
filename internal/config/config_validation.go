// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"
)

// Authentication strategy names accepted in [Auth.Type].
const (
	AuthTypeDisabled       = ""
	AuthTypeNone           = "none"
	AuthTypeBase           = "auth"
	AuthTypeBasic          = "basic"
	AuthTypeBasicLegacy    = "basic_auth"
	AuthTypeSession        = "session"
	AuthTypeSessionLegacy  = "session_auth"
	AuthTypeSessionExpiry  = "session_exp_auth"
	AuthTypeSessionDB      = "session_db_auth"
	DefaultSessionName     = "session_id"
	DefaultHTTPAddress     = "0.0.0.0:5000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultBcryptCost      = 10
	DefaultRedisKeyPrefix  = "go-session-auth"
	minBcryptCost          = 4
	maxBcryptCost          = 31
	defaultAdapterAddress  = "http://localhost:5000"
	defaultAdapterTimeout  = 15 * time.Second
)

// Session store backends accepted in [Auth.SessionStore].
const (
	SessionStoreMemory   = "memory"
	SessionStoreDatabase = "database"
	SessionStoreRedis    = "redis"
)

// Credential store drivers accepted in [DB.Driver].
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultExcludedPaths are the public routes of the API.
var DefaultExcludedPaths = []string{
	"/",
	"/api/v1/status/",
	"/api/v1/unauthorized/",
	"/api/v1/forbidden/",
	"/api/v1/users/",
	"/api/v1/sessions/",
	"/api/v1/reset_password/",
}

var (
	authTypes = []string{
		AuthTypeDisabled, AuthTypeNone, AuthTypeBase,
		AuthTypeBasic, AuthTypeBasicLegacy,
		AuthTypeSession, AuthTypeSessionLegacy, AuthTypeSessionExpiry, AuthTypeSessionDB,
	}
	sessionStores = []string{SessionStoreMemory, SessionStoreDatabase, SessionStoreRedis}
	drivers       = []string{DriverMemory, DriverPostgres, DriverSQLite}
)

// applyDefaults fills every unset field that has a sensible default.
// The legacy "session_db_auth" strategy name implies the database session
// store unless a store was chosen explicitly.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.SessionName == "" {
		cfg.Auth.SessionName = DefaultSessionName
	}
	if cfg.Auth.SessionStore == "" {
		cfg.Auth.SessionStore = SessionStoreMemory
		if cfg.Auth.Type == AuthTypeSessionDB {
			cfg.Auth.SessionStore = SessionStoreDatabase
		}
	}
	if len(cfg.Auth.ExcludedPaths) == 0 {
		cfg.Auth.ExcludedPaths = slices.Clone(DefaultExcludedPaths)
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverMemory
	}
	if cfg.Storage.Redis.Prefix == "" {
		cfg.Storage.Redis.Prefix = DefaultRedisKeyPrefix
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(authTypes, cfg.Auth.Type) {
		return fmt.Errorf("%w: unknown auth type %q", ErrInvalidAuthConfigs, cfg.Auth.Type)
	}
	if !slices.Contains(sessionStores, cfg.Auth.SessionStore) {
		return fmt.Errorf("%w: unknown session store %q", ErrInvalidAuthConfigs, cfg.Auth.SessionStore)
	}
	if cfg.Auth.BcryptCost < minBcryptCost || cfg.Auth.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAuthConfigs, cfg.Auth.BcryptCost)
	}

	if !slices.Contains(drivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.Driver != DriverMemory && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: driver %q requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Auth.SessionStore == SessionStoreRedis && cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: redis session store requires an address", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Workers.SessionSweepInterval < 0 {
		return fmt.Errorf("%w: negative sweep interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
