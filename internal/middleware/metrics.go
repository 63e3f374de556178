package middleware

import (
	"errors"
	"time"

	"github.com/deppfellow/anime-service/internal/errs"
	"github.com/deppfellow/anime-service/internal/metrics"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records Prometheus request metrics.
type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Observe labels requests by route template, not raw path, so ids do not
// explode cardinality.
func (m *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			metrics.TrackInFlight(true)
			defer metrics.TrackInFlight(false)

			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordHTTPRequest(c.Request().Method, route, responseStatus(c, err), time.Since(start))

			return err
		}
	}
}

// responseStatus returns the status the error handler will write when the
// response is not committed yet.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code
	}

	return 500
}
