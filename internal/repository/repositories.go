package repository

import (
	"github.com/deppfellow/anime-service/internal/server"
)

// Repositories groups every repository for dependency injection.
type Repositories struct {
	Anime *AnimeRepository
	User  *UserRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Anime: NewAnimeRepository(s.DB.Pool),
		User:  NewUserRepository(s.DB.Pool),
	}
}
