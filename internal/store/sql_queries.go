// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-session-auth/models"
)

const (
	colID               = "id"
	colEmail            = "email"
	colHashedPassword   = "hashed_password"
	colSessionID        = "session_id"
	colSessionCreatedAt = "session_created_at"
	colResetToken       = "reset_token"
	colCreatedAt        = "created_at"
)

// userColumns is the column order shared by every SELECT and by scanUser.
var userColumns = []string{
	colID,
	colEmail,
	colHashedPassword,
	colSessionID,
	colSessionCreatedAt,
	colResetToken,
	colCreatedAt,
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(colID, colEmail, colHashedPassword, colCreatedAt).
		Values(user.ID, user.Email, user.HashedPassword, user.CreatedAt).
		ToSql()
}

// buildSelectUserQuery selects a single user whose column equals value.
func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildSetSessionQuery(b sq.StatementBuilderType, userID, sessionID string, createdAt time.Time) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set(colSessionID, sessionID).
		Set(colSessionCreatedAt, createdAt).
		Where(sq.Eq{colID: userID}).
		ToSql()
}

func buildClearSessionQuery(b sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set(colSessionID, nil).
		Set(colSessionCreatedAt, nil).
		Where(sq.Eq{colSessionID: sessionID}).
		ToSql()
}

func buildSetResetTokenQuery(b sq.StatementBuilderType, userID, token string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set(colResetToken, token).
		Where(sq.Eq{colID: userID}).
		ToSql()
}

// buildResetPasswordQuery swaps the digest and consumes the token in one
// statement so a token can only be redeemed once.
func buildResetPasswordQuery(b sq.StatementBuilderType, token, hashedPassword string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set(colHashedPassword, hashedPassword).
		Set(colResetToken, nil).
		Where(sq.Eq{colResetToken: token}).
		ToSql()
}
