package service

import (
	"fmt"

	"github.com/deppfellow/anime-service/internal/authz"
	"github.com/deppfellow/anime-service/internal/repository"
	"github.com/deppfellow/anime-service/internal/server"
)

type Services struct {
	Auth  *AuthService
	Anime *AnimeService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	enforcer, err := authz.NewEnforcer(s.Config.Auth.PolicyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize authorization: %w", err)
	}

	return &Services{
		Auth:  NewAuthService(repos.User, enforcer),
		Anime: NewAnimeService(repos.Anime),
	}, nil
}
