// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	pingMaxRetries = 4
	pingBaseDelay  = 250 * time.Millisecond
)

// DB wraps a *sql.DB together with the dialect specific pieces the
// repositories need: a squirrel statement builder with the right placeholder
// format and an error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations using the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ping checks the connection, retrying with a Fibonacci backoff while the
// failure looks transient.
func (db *DB) ping(ctx context.Context) error {
	backoff := retry.WithMaxRetries(pingMaxRetries, retry.NewFibonacci(pingBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "*DB.ping").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// openDB opens a connection pool for driverName and verifies it with ping.
func openDB(ctx context.Context, driverName, dsn string, configure func(*sql.DB) *DB) (*DB, error) {
	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	db := configure(conn)
	if err = db.ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}

	return db, nil
}
