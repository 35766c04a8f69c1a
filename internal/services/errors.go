package services

import "errors"

var (
	// ErrNotFound covers a resource that is absent and one owned by another
	// user; callers cannot tell the two apart, so existence never leaks.
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDate        = errors.New("invalid event date")
	ErrEmptyUpdate        = errors.New("no fields to update")
)
