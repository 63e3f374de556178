package handler

import (
	"github.com/deppfellow/anime-service/internal/server"
	"github.com/deppfellow/anime-service/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Anime   *AnimeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Anime:   NewAnimeHandler(s, services.Anime),
	}
}
