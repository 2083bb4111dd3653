package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytebites/backend/internal/logger"
	"github.com/bytebites/backend/internal/testhelpers"
)

func TestLocalLimiter_AllowsBurstThenBlocks(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLocalLimiter(RateLimitConfig{Limit: 2, Window: time.Minute})
	l.now = func() time.Time { return now }

	ctx := context.Background()

	d, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	d, _ = l.Allow(ctx, "alice")
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, _ = l.Allow(ctx, "alice")
	assert.False(t, d.Allowed)

	d, _ = l.Allow(ctx, "bob")
	assert.True(t, d.Allowed, "buckets are per key")

	now = now.Add(30 * time.Second)
	d, _ = l.Allow(ctx, "alice")
	assert.True(t, d.Allowed, "one token refills every window/limit")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (Decision, error) {
	return Decision{}, assert.AnError
}

func limitedRouter(l Limiter) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))
	router.POST("/things", func(c *gin.Context) {
		c.Set(ContextUserID, c.GetHeader("X-User"))
		c.Next()
	}, RateLimit(l, logger.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func post(router *gin.Engine, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	req.Header.Set("X-User", user)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRateLimitMiddleware(t *testing.T) {
	router := limitedRouter(NewLocalLimiter(RateLimitConfig{Limit: 1, Window: time.Hour}))

	first := post(router, "alice")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := post(router, "alice")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, post(router, "bob").Code)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	rr := post(limitedRouter(failingLimiter{}), "alice")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
}

func TestRedisLimiter(t *testing.T) {
	addr := testhelpers.SetupRedis(t)

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLimiter(client, RateLimitConfig{Limit: 2, Window: time.Minute, KeyPrefix: "test"})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 1-i, d.Remaining)
	}

	d, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.True(t, d.Reset.After(time.Now().Add(-time.Second)))
}
