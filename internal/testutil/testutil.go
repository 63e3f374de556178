// Package testutil provides in-memory stores and a preconfigured server
// container for tests that exercise the HTTP stack without PostgreSQL.
package testutil

import (
	"encoding/base64"
	"testing"

	"github.com/deppfellow/anime-service/internal/authz"
	"github.com/deppfellow/anime-service/internal/config"
	"github.com/deppfellow/anime-service/internal/logger"
	"github.com/deppfellow/anime-service/internal/server"
	"github.com/deppfellow/anime-service/internal/service"
	"github.com/rs/zerolog"
)

// Seeded credentials, matching what a fresh deployment is provisioned with.
const (
	UserName      = "user"
	UserPassword  = "user123"
	AdminName     = "admin"
	AdminPassword = "admin123"
)

// NewConfig returns a valid configuration that needs no external services.
func NewConfig() *config.Config {
	cfg := config.Default()
	cfg.Primary.Env = "test"
	cfg.Database.Password = "test"
	cfg.Observability = config.DefaultObservabilityConfig()
	cfg.Observability.Environment = "test"
	return cfg
}

// NewServer returns a container with a no-op logger and no database.
func NewServer(t *testing.T) *server.Server {
	t.Helper()

	log := zerolog.Nop()
	return &server.Server{
		Config:        NewConfig(),
		Logger:        &log,
		LoggerService: &logger.LoggerService{},
	}
}

// NewServices wires real services over the given stores and the embedded
// access policy.
func NewServices(t *testing.T, animes service.AnimeRepository, users service.UserRepository) *service.Services {
	t.Helper()

	enforcer, err := authz.NewEnforcer("")
	if err != nil {
		t.Fatalf("create enforcer: %v", err)
	}

	return &service.Services{
		Auth:  service.NewAuthService(users, enforcer),
		Anime: service.NewAnimeService(animes),
	}
}

// SeededUsers returns a user store holding the default user and admin.
func SeededUsers(t *testing.T) *UserStore {
	t.Helper()

	users := NewUserStore()
	users.Add(t, UserName, UserPassword, "ROLE_USER")
	users.Add(t, AdminName, AdminPassword, "ROLE_ADMIN,ROLE_USER")
	return users
}

// BasicAuth returns an Authorization header value.
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
