package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

type User struct {
	ID       string
	Username string
	Email    string

	// Never rendered outside the auth usecase.
	PasswordSalt []byte
	PasswordHash []byte

	CreatedAt time.Time
}
