package handler

import (
	"net/http"

	"github.com/deppfellow/anime-service/internal/model/anime"
	"github.com/deppfellow/anime-service/internal/server"
	"github.com/deppfellow/anime-service/internal/service"
	"github.com/labstack/echo/v4"
)

type AnimeHandler struct {
	Handler
	animeService *service.AnimeService
}

func NewAnimeHandler(s *server.Server, animeService *service.AnimeService) *AnimeHandler {
	return &AnimeHandler{
		Handler:      NewHandler(s),
		animeService: animeService,
	}
}

func (h *AnimeHandler) ListAnimes(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *anime.ListAnimesPayload) ([]anime.Anime, error) {
			return h.animeService.FindAll(c.Request().Context())
		},
		http.StatusOK,
		&anime.ListAnimesPayload{},
	)(c)
}

func (h *AnimeHandler) GetAnimeByID(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *anime.GetAnimeByIDPayload) (*anime.Anime, error) {
			return h.animeService.FindByID(c.Request().Context(), int(payload.ID))
		},
		http.StatusOK,
		&anime.GetAnimeByIDPayload{},
	)(c)
}

func (h *AnimeHandler) CreateAnime(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *anime.CreateAnimePayload) (*anime.Anime, error) {
			return h.animeService.Save(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&anime.CreateAnimePayload{},
	)(c)
}

// CreateAnimeBatch rejects the whole batch when any item is invalid.
func (h *AnimeHandler) CreateAnimeBatch(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *anime.CreateAnimeBatchPayload) ([]anime.Anime, error) {
			return h.animeService.SaveAll(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&anime.CreateAnimeBatchPayload{},
	)(c)
}

func (h *AnimeHandler) UpdateAnime(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *anime.UpdateAnimePayload) error {
			return h.animeService.Update(c.Request().Context(), payload)
		},
		http.StatusNoContent,
		&anime.UpdateAnimePayload{},
	)(c)
}

func (h *AnimeHandler) DeleteAnime(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *anime.DeleteAnimePayload) error {
			return h.animeService.Delete(c.Request().Context(), int(payload.ID))
		},
		http.StatusNoContent,
		&anime.DeleteAnimePayload{},
	)(c)
}
