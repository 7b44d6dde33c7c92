package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			engine:             "postgres",
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userColumns() []string {
	return []string{"user_id", "username", "password_hash", "created_at"}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "alice", "$2a$10$hash", now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "$2a$10$hash", sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), models.User{
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "alice", created.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(7, "alice", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT user_id, username, password_hash, created_at FROM users").
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
	assert.Equal(t, "$2a$10$hash", found.PasswordHash)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, username, password_hash, created_at FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, username, password_hash, created_at FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestErrorClassifiers_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		classifier ErrorClassificator
		err        error
		want       bool
	}{
		{
			name:       "postgres unique violation",
			classifier: NewPostgresErrorClassifier(),
			err:        pgError(pgerrcode.UniqueViolation),
			want:       true,
		},
		{
			name:       "postgres other code",
			classifier: NewPostgresErrorClassifier(),
			err:        pgError(pgerrcode.NotNullViolation),
			want:       false,
		},
		{
			name:       "postgres non-driver error",
			classifier: NewPostgresErrorClassifier(),
			err:        errors.New("boom"),
			want:       false,
		},
		{
			name:       "sqlite unique violation",
			classifier: NewSQLiteErrorClassifier(),
			err:        sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want:       true,
		},
		{
			name:       "sqlite other constraint",
			classifier: NewSQLiteErrorClassifier(),
			err:        sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classifier.IsUniqueViolation(tt.err))
		})
	}
}
