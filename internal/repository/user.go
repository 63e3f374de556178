package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/anime-service/internal/model/user"
	"github.com/deppfellow/anime-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const usersTable = "users"

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns an error wrapping pgx.ErrNoRows for unknown users.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password, name, authorities FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Authorities)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NoRows(usersTable)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

// Create stores u, whose Password must already be encoded.
func (r *UserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (username, password, name, authorities) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Username, u.Password, u.Name, u.Authorities,
	).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", u.Username, err)
	}

	return &u, nil
}
