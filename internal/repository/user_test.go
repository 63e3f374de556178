package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/deppfellow/anime-service/internal/model/user"
	"github.com/deppfellow/anime-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectUser = `SELECT id, username, password, name, authorities FROM users WHERE username = $1`

func TestUserRepository_FindByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "name", "authorities"}).
			AddRow(2, "admin", "{noop}admin123", "Administrator", "ROLE_ADMIN,ROLE_USER"))

	got, err := repo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", got.Name)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, got.AuthorityList())
}

func TestUserRepository_FindByUsernameMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "name", "authorities"}))

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, password, name, authorities)`)).
		WithArgs("admin", "{noop}x", "Admin", "ROLE_ADMIN").
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_username_key"})

	_, err := repo.Create(context.Background(), user.User{
		Username:    "admin",
		Password:    "{noop}x",
		Name:        "Admin",
		Authorities: "ROLE_ADMIN",
	})
	assert.Equal(t, sqlerr.UniqueViolation, sqlerr.MapCode(pgErrCode(t, err)))
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, password, name, authorities)`)).
		WithArgs("user", "{noop}user123", "User", "ROLE_USER").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	got, err := repo.Create(context.Background(), user.User{
		Username:    "user",
		Password:    "{noop}user123",
		Name:        "User",
		Authorities: "ROLE_USER",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func pgErrCode(t *testing.T, err error) string {
	t.Helper()
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	return pgErr.Code
}
