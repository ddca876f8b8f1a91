package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
	"github.com/ErlanBelekov/shift-calendar/internal/metrics"
	"github.com/ErlanBelekov/shift-calendar/internal/password"
	"github.com/ErlanBelekov/shift-calendar/internal/repository"
)

// tokenIssuer is the part of token.Service the auth usecase needs.
type tokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// Hashed against when the username is unknown so both login failures cost the same.
var dummySalt = make([]byte, password.SaltLength)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens tokenIssuer
}

func NewAuthUsecase(users repository.UserRepository, tokens tokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register stores a new user with a fresh salt and the digest of the password.
// Returns domain.ErrUsernameTaken if the username exists, including when a
// concurrent registration wins the race at the database.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	_, err := u.users.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		return nil, err
	}

	created, err := u.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordSalt: salt,
		PasswordHash: password.Hash(input.Password, salt),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return created, nil
}

// Authenticate checks the password against the stored digest and returns the user ID.
// Unknown usernames and wrong passwords both yield domain.ErrInvalidCredentials.
func (u *AuthUsecase) Authenticate(ctx context.Context, username, plain string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			password.Hash(plain, dummySalt)
			metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonBadCredentials).Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !password.Equal(plain, user.PasswordSalt, user.PasswordHash) {
		metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonBadCredentials).Inc()
		return "", domain.ErrInvalidCredentials
	}
	return user.ID, nil
}

type LoginResult struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// Login authenticates the user and issues a session token.
func (u *AuthUsecase) Login(ctx context.Context, username, plain string) (LoginResult, error) {
	userID, err := u.Authenticate(ctx, username, plain)
	if err != nil {
		return LoginResult{}, err
	}

	signed, expiresAt, err := u.tokens.Issue(userID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{UserID: userID, Token: signed, ExpiresAt: expiresAt}, nil
}
