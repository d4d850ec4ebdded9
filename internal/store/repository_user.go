// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

// userRepository is the SQL implementation of [UserRepository]. The same
// code serves PostgreSQL and SQLite; dialect differences are carried by the
// statement builder and the error classifier inside [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user as given. ID and CreatedAt are assigned by the
// caller.
//
// Error handling:
//   - unique violation (PostgreSQL 23505, SQLite UNIQUE) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUserBy(ctx, colID, id)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, colEmail, email)
}

func (r *userRepository) FindUserBySessionID(ctx context.Context, sessionID string) (models.User, error) {
	return r.findUserBy(ctx, colSessionID, sessionID)
}

func (r *userRepository) FindUserByResetToken(ctx context.Context, token string) (models.User, error) {
	return r.findUserBy(ctx, colResetToken, token)
}

// findUserBy returns the single user whose column equals value. An empty
// value never matches: NULL columns must not be found by "".
func (r *userRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	if value == "" {
		return models.User{}, ErrUserNotFound
	}

	query, args, err := buildSelectUserQuery(r.db.builder, column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findUserBy").Str("column", column).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) SetSession(ctx context.Context, userID, sessionID string, createdAt time.Time) error {
	query, args, err := buildSetSessionQuery(r.db.builder, userID, sessionID, createdAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.SetSession", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ClearSession(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	query, args, err := buildClearSessionQuery(r.db.builder, sessionID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.ClearSession", query, args)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *userRepository) SetResetToken(ctx context.Context, userID, token string) error {
	query, args, err := buildSetResetTokenQuery(r.db.builder, userID, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.SetResetToken", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ResetPassword(ctx context.Context, token, hashedPassword string) error {
	if token == "" {
		return ErrUserNotFound
	}

	query, args, err := buildResetPasswordQuery(r.db.builder, token, hashedPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*userRepository.ResetPassword", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// exec runs a DML statement and returns the number of affected rows.
func (r *userRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// scanUser reads a row selected with userColumns.
func scanUser(row sq.RowScanner) (models.User, error) {
	var (
		user             models.User
		sessionID        sql.NullString
		sessionCreatedAt sql.NullTime
		resetToken       sql.NullString
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&sessionID,
		&sessionCreatedAt,
		&resetToken,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.SessionID = sessionID.String
	user.ResetToken = resetToken.String
	if sessionCreatedAt.Valid {
		t := sessionCreatedAt.Time
		user.SessionCreatedAt = &t
	}

	return user, nil
}
