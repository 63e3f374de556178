package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/anime-service/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowLimit(t *testing.T) {
	assert.Equal(t, int64(40), windowLimit(20, 40))
	assert.Equal(t, int64(3), windowLimit(2.5, 0))
	assert.Equal(t, int64(1), windowLimit(0, 0))
	assert.Equal(t, int64(1), windowLimit(0.2, 0))
}

func TestLimit_DisabledPassesThrough(t *testing.T) {
	s := testutil.NewServer(t)
	s.Config.RateLimit.Enabled = false

	calls := 0
	h := NewRateLimitMiddleware(s).Limit()(func(c echo.Context) error {
		calls++
		return nil
	})

	for range 5 {
		c, _ := newContext(http.MethodGet, "/")
		require.NoError(t, h(c))
	}
	assert.Equal(t, 5, calls)
}

func TestRedisRateLimiterStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	log := zerolog.Nop()
	store := NewRedisRateLimiterStore(client, 1, time.Second, &log)

	for range 3 {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
