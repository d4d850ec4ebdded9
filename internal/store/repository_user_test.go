package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/migrations"
	"github.com/MKhiriev/go-session-auth/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(db, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		var sessionID, resetToken any
		var sessionCreatedAt any
		if u.SessionID != "" {
			sessionID = u.SessionID
		}
		if u.SessionCreatedAt != nil {
			sessionCreatedAt = *u.SessionCreatedAt
		}
		if u.ResetToken != "" {
			resetToken = u.ResetToken
		}
		rows.AddRow(u.ID, u.Email, u.HashedPassword, sessionID, sessionCreatedAt, resetToken, u.CreatedAt)
	}
	return rows
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	user := models.User{ID: "u-1", Email: "bob@hbtn.io", HashedPassword: "digest", CreatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,hashed_password,created_at) VALUES ($1,$2,$3,$4)")).
		WithArgs(user.ID, user.Email, user.HashedPassword, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != user {
		t.Errorf("expected %+v, got %+v", user, created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{ID: "u-1", Email: "bob@hbtn.io"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_SQLiteUniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.CreateUser(context.Background(), models.User{ID: "u-1", Email: "bob@hbtn.io"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{ID: "u-1"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !strings.Contains(err.Error(), "db network error") {
		t.Errorf("expected driver error to be wrapped, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	user := models.User{
		ID:               "u-1",
		Email:            "bob@hbtn.io",
		HashedPassword:   "digest",
		SessionID:        "s-1",
		SessionCreatedAt: &now,
		ResetToken:       "r-1",
		CreatedAt:        now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, hashed_password, session_id, session_created_at, reset_token, created_at FROM users WHERE email = $1 LIMIT 1")).
		WithArgs(user.Email).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != user.ID || found.SessionID != "s-1" || found.ResetToken != "r-1" {
		t.Errorf("unexpected user: %+v", found)
	}
	if found.SessionCreatedAt == nil || !found.SessionCreatedAt.Equal(now) {
		t.Errorf("expected session_created_at %v, got %v", now, found.SessionCreatedAt)
	}
}

func TestFindUserByEmail_NullColumns(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{ID: "u-1", Email: "bob@hbtn.io", HashedPassword: "digest", CreatedAt: time.Now().UTC()}
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.SessionID != "" || found.SessionCreatedAt != nil || found.ResetToken != "" {
		t.Errorf("expected nullable columns to be empty, got %+v", found)
	}
}

func TestFindUser_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		column string
		find   func(r *userRepository) (models.User, error)
	}{
		{"by id", "id", func(r *userRepository) (models.User, error) {
			return r.FindUserByID(context.Background(), "missing")
		}},
		{"by email", "email", func(r *userRepository) (models.User, error) {
			return r.FindUserByEmail(context.Background(), "missing")
		}},
		{"by session", "session_id", func(r *userRepository) (models.User, error) {
			return r.FindUserBySessionID(context.Background(), "missing")
		}},
		{"by reset token", "reset_token", func(r *userRepository) (models.User, error) {
			return r.FindUserByResetToken(context.Background(), "missing")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery("FROM users WHERE " + tt.column + " = ").
				WithArgs("missing").
				WillReturnRows(sqlmock.NewRows(userColumns))

			_, err := tt.find(repo)
			if !errors.Is(err, ErrUserNotFound) {
				t.Fatalf("expected ErrUserNotFound, got %v", err)
			}
		})
	}
}

func TestFindUser_EmptyKeyDoesNotQuery(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	if _, err := repo.FindUserBySessionID(context.Background(), ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindUserByResetToken(context.Background(), ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}

func TestFindUserByID_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM users WHERE id").
		WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByID(context.Background(), "u-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSetSession(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET session_id = $1, session_created_at = $2 WHERE id = $3")).
			WithArgs("s-1", now, "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SetSession(context.Background(), "u-1", "s-1", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET session_id").
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.SetSession(context.Background(), "u-x", "s-1", now); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET session_id").
			WillReturnError(errors.New("boom"))

		if err := repo.SetSession(context.Background(), "u-1", "s-1", now); !errors.Is(err, ErrExecutingStatement) {
			t.Fatalf("expected ErrExecutingStatement, got %v", err)
		}
	})
}

func TestClearSession(t *testing.T) {
	t.Run("cleared", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET session_id = $1, session_created_at = $2 WHERE session_id = $3")).
			WithArgs(nil, nil, "s-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.ClearSession(context.Background(), "s-1")
		if err != nil || !ok {
			t.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET session_id").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.ClearSession(context.Background(), "s-x")
		if err != nil || ok {
			t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		ok, err := repo.ClearSession(context.Background(), "")
		if err != nil || ok {
			t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unexpected statements: %v", err)
		}
	})
}

func TestSetResetToken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reset_token = $1 WHERE id = $2")).
		WithArgs("r-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET reset_token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetResetToken(context.Background(), "u-1", "r-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SetResetToken(context.Background(), "u-x", "r-1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET hashed_password = $1, reset_token = $2 WHERE reset_token = $3")).
		WithArgs("new-digest", nil, "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET hashed_password").
		WithArgs("new-digest", nil, "r-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ResetPassword(context.Background(), "r-1", "new-digest"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the token is consumed by the first call
	if err := repo.ResetPassword(context.Background(), "r-1", "new-digest"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := repo.ResetPassword(context.Background(), "", "new-digest"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for empty token, got %v", err)
	}
}

func TestRowsAffectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET reset_token").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no rows info")))

	if err := repo.SetResetToken(context.Background(), "u-1", "r-1"); !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
