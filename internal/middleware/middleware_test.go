package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/anime-service/internal/errs"
	"github.com/deppfellow/anime-service/internal/model/user"
	"github.com/deppfellow/anime-service/internal/sqlerr"
	"github.com/deppfellow/anime-service/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestID(t *testing.T) {
	mw := RequestID()

	c, rec := newContext(http.MethodGet, "/")
	require.NoError(t, mw(func(c echo.Context) error { return nil })(c))
	generated := GetRequestID(c)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Header().Get(RequestIDHeader))

	c, rec = newContext(http.MethodGet, "/")
	c.Request().Header.Set(RequestIDHeader, "abc")
	require.NoError(t, mw(func(c echo.Context) error { return nil })(c))
	assert.Equal(t, "abc", GetRequestID(c))
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))

	c, _ = newContext(http.MethodGet, "/")
	c.Request().Header.Set(RequestIDHeader, "bad id\twith spaces")
	require.NoError(t, mw(func(c echo.Context) error { return nil })(c))
	assert.Len(t, GetRequestID(c), 36)

	c, _ = newContext(http.MethodGet, "/")
	c.Request().Header.Set(RequestIDHeader, strings.Repeat("a", maxRequestIDLength+1))
	require.NoError(t, mw(func(c echo.Context) error { return nil })(c))
	assert.Len(t, GetRequestID(c), 36)
}

func TestEnhanceContext_SharesLoggerWithRequestContext(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	s := testutil.NewServer(t)
	s.Logger = &log
	ce := NewContextEnhancer(s)

	c, _ := newContext(http.MethodGet, "/animes/1")
	c.Set(RequestIDKey, "req-1")
	err := ce.EnhanceContext()(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return nil
	})(c)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"method":"GET"`)
	assert.Contains(t, buf.String(), "from service")
}

func TestWithUser(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/")
	assert.Nil(t, GetUser(c))
	assert.Empty(t, GetUserID(c))

	u := &user.User{Username: "admin", Authorities: "ROLE_ADMIN,ROLE_USER"}
	withUser(c, u)

	assert.Same(t, u, GetUser(c))
	assert.Equal(t, "admin", GetUserID(c))
	assert.Equal(t, "ROLE_ADMIN,ROLE_USER", c.Get(UserRoleKey))
}

func TestRequirePermission(t *testing.T) {
	s := testutil.NewServer(t)
	services := testutil.NewServices(t, testutil.NewAnimeStore(), testutil.NewUserStore())
	auth := NewAuthMiddleware(s, services.Auth)

	called := false
	next := auth.RequirePermission(func(c echo.Context) error {
		called = true
		return nil
	})

	c, _ := newContext(http.MethodPost, "/animes")
	err := next(c)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)

	c, _ = newContext(http.MethodPost, "/animes")
	withUser(c, &user.User{Username: "user", Authorities: "ROLE_USER"})
	err = next(c)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.False(t, called)

	c, _ = newContext(http.MethodPost, "/animes")
	withUser(c, &user.User{Username: "admin", Authorities: "ROLE_ADMIN,ROLE_USER"})
	require.NoError(t, next(c))
	assert.True(t, called)
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(testutil.NewServer(t))

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", errs.NewForbiddenError("Access Denied", false), http.StatusForbidden, "FORBIDDEN"},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"echo error", echo.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"missing row", sqlerr.NoRows("anime"), http.StatusNotFound, "ANIME_NOT_FOUND"},
		{"anything else", assert.AnError, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/animes/1")
			global.GlobalErrorHandler(tt.err, c)

			require.Equal(t, tt.status, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.status, body.Status)
			assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
		})
	}
}

func TestGlobalErrorHandler_Head(t *testing.T) {
	global := NewGlobalMiddlewares(testutil.NewServer(t))

	c, rec := newContext(http.MethodHead, "/animes/1")
	global.GlobalErrorHandler(sqlerr.NoRows("anime"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestResponseStatus(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, responseStatus(c, nil))
	assert.Equal(t, http.StatusTooManyRequests, responseStatus(c, errs.NewTooManyRequestsError("slow down")))
	assert.Equal(t, http.StatusUnauthorized, responseStatus(c, echo.ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, responseStatus(c, assert.AnError))
}
