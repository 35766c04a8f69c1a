package services

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"daykeep/internal/auth"
	"daykeep/internal/models"
)

// UserServiceProvider defines the interface for account management.
type UserServiceProvider interface {
	Register(username, email, password string) (string, error)
	Login(email, password string) (string, error)
}

// UserService registers accounts and issues session tokens.
type UserService struct {
	db     *sqlx.DB
	secret []byte
}

// NewUserService creates a new UserService signing tokens with the given
// secret.
func NewUserService(db *sqlx.DB, secret []byte) *UserService {
	return &UserService{db: db, secret: secret}
}

// Register creates a new account and returns a signed session token for it.
// The email must be unused and the password must satisfy the complexity
// policy.
func (s *UserService) Register(username, email, password string) (string, error) {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(1) FROM users WHERE email = ?", email); err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrDuplicateEmail
	}

	if err := auth.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	query, args, err := sq.Insert("users").
		Columns("id", "username", "email", "password_hash").
		Values(user.ID, user.Username, user.Email, user.PasswordHash).
		ToSql()
	if err != nil {
		return "", err
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return "", err
	}

	return auth.GenerateToken(user.ID, s.secret, auth.TokenLifetime)
}

// Login verifies credentials and returns a fresh session token. Previously
// issued tokens stay valid for their full lifetime.
func (s *UserService) Login(email, password string) (string, error) {
	var user models.User
	err := s.db.Get(&user,
		"SELECT id, username, email, password_hash FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, s.secret, auth.TokenLifetime)
}
