// Package router builds the Echo instance: middleware order, the error
// handler and every route.
package router

import (
	"github.com/deppfellow/anime-service/internal/handler"
	"github.com/deppfellow/anime-service/internal/middleware"
	"github.com/deppfellow/anime-service/internal/server"
	"github.com/deppfellow/anime-service/internal/service"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, services)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Metrics.Observe(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerAnimeRoutes(router, h, middlewares)

	return router
}

// registerAnimeRoutes mounts /animes behind Basic auth and the access policy.
func registerAnimeRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	animes := r.Group("/animes", m.Auth.RequireAuth, m.Auth.RequirePermission)

	animes.GET("", h.Anime.ListAnimes)
	animes.GET("/:id", h.Anime.GetAnimeByID)
	animes.POST("", h.Anime.CreateAnime)
	animes.POST("/batch", h.Anime.CreateAnimeBatch)
	animes.PUT("/:id", h.Anime.UpdateAnime)
	animes.DELETE("/:id", h.Anime.DeleteAnime)
}
