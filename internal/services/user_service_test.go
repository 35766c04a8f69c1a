package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daykeep/internal/auth"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlite"), mock
}

var testSecret = []byte("test-secret")

func TestUserService_Register(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSecret)

	mock.ExpectQuery(`SELECT COUNT\(1\) FROM users WHERE email`).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "alice", "a@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	token, err := svc.Register("alice", "a@example.com", "Str0ng&Password")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSecret)

	mock.ExpectQuery(`SELECT COUNT\(1\) FROM users WHERE email`).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Register("alice", "a@example.com", "Str0ng&Password")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSecret)

	mock.ExpectQuery(`SELECT COUNT\(1\) FROM users WHERE email`).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.Register("alice", "a@example.com", "short")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Login(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSecret)

	hash, err := auth.HashPassword("Str0ng&Password")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, username, email, password_hash FROM users WHERE email").
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow("user-1", "alice", "a@example.com", hash))

	token, err := svc.Login("a@example.com", "Str0ng&Password")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSecret)

	mock.ExpectQuery("SELECT id, username, email, password_hash FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}))

	_, err := svc.Login("ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, testSecret)

	hash, err := auth.HashPassword("Str0ng&Password")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, username, email, password_hash FROM users WHERE email").
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow("user-1", "alice", "a@example.com", hash))

	_, err = svc.Login("a@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, mock.ExpectationsWereMet())
}
