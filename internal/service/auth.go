package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/anime-service/internal/lib/password"
	"github.com/deppfellow/anime-service/internal/model/user"
	"github.com/deppfellow/anime-service/internal/validation"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository is the credential store AuthService depends on.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	Create(ctx context.Context, u user.User) (*user.User, error)
}

// Authorizer decides whether any of a set of authorities may call an endpoint.
type Authorizer interface {
	EnforceAny(authorities []string, path, method string) (bool, error)
}

type AuthService struct {
	users      UserRepository
	authorizer Authorizer
}

func NewAuthService(users UserRepository, authorizer Authorizer) *AuthService {
	return &AuthService{
		users:      users,
		authorizer: authorizer,
	}
}

// Authenticate resolves the user and checks the password. Unknown users
// still cost one bcrypt comparison.
func (s *AuthService) Authenticate(ctx context.Context, username, raw string) (*user.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			password.BurnCompare(raw)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	ok, err := password.Matches(raw, u.Password)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("username", username).Msg("stored password cannot be verified")
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Authorize reports whether u may call method on path.
func (s *AuthService) Authorize(u *user.User, path, method string) (bool, error) {
	return s.authorizer.EnforceAny(u.AuthorityList(), path, method)
}

// CreateUser validates the payload, encodes the password and stores the user.
func (s *AuthService) CreateUser(ctx context.Context, payload user.CreateUserPayload) (*user.User, error) {
	if err := validation.Validator().Struct(payload); err != nil {
		return nil, err
	}

	encoded, err := password.Encode(payload.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, user.User{
		Username:    payload.Username,
		Password:    encoded,
		Name:        payload.Name,
		Authorities: payload.Authorities,
	})
	if err != nil {
		return nil, handleStoreError(ctx, err, "failed to create user")
	}

	return created, nil
}
