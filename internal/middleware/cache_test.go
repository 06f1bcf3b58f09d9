package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cachedAPI struct {
	engine *gin.Engine
	redis  *miniredis.Miniredis
	stats  int
	failed int
}

func newCachedAPI(t *testing.T) *cachedAPI {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	api := &cachedAPI{redis: mr}
	log := zap.NewNop()

	r := gin.New()
	r.Use(InvalidateCache(rdb, log))
	dashboard := r.Group("/api/dashboard", ResponseCache(rdb, time.Minute, log))
	dashboard.GET("/stats", func(c *gin.Context) {
		api.stats++
		c.JSON(http.StatusOK, gin.H{"n": api.stats})
	})
	dashboard.GET("/failing", func(c *gin.Context) {
		api.failed++
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
	r.POST("/api/cells", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{}) })
	r.POST("/api/inmates", func(c *gin.Context) { c.JSON(http.StatusBadRequest, gin.H{"error": "bad"}) })

	api.engine = r
	return api
}

func (a *cachedAPI) get(t *testing.T, path, wantCache, wantBody string) {
	t.Helper()
	w := serve(a.engine, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wantCache, w.Header().Get("X-Cache"))
	assert.JSONEq(t, wantBody, w.Body.String())
}

func TestResponseCache_MissThenHit(t *testing.T) {
	api := newCachedAPI(t)

	api.get(t, "/api/dashboard/stats", "MISS", `{"n":1}`)
	api.get(t, "/api/dashboard/stats", "HIT", `{"n":1}`)
	assert.Equal(t, 1, api.stats)
	assert.Len(t, api.redis.Keys(), 1)

	api.redis.FastForward(time.Minute + time.Second)
	api.get(t, "/api/dashboard/stats", "MISS", `{"n":2}`)
}

func TestResponseCache_SuccessfulWriteInvalidates(t *testing.T) {
	api := newCachedAPI(t)
	api.get(t, "/api/dashboard/stats", "MISS", `{"n":1}`)

	w := serve(api.engine, http.MethodPost, "/api/cells", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, api.redis.Keys())

	api.get(t, "/api/dashboard/stats", "MISS", `{"n":2}`)
	assert.Equal(t, 2, api.stats)
}

func TestResponseCache_FailedWriteKeepsCache(t *testing.T) {
	api := newCachedAPI(t)
	api.get(t, "/api/dashboard/stats", "MISS", `{"n":1}`)

	w := serve(api.engine, http.MethodPost, "/api/inmates", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	api.get(t, "/api/dashboard/stats", "HIT", `{"n":1}`)
	assert.Equal(t, 1, api.stats)
}

func TestResponseCache_ErrorsAreNotStored(t *testing.T) {
	api := newCachedAPI(t)

	for i := 0; i < 2; i++ {
		w := serve(api.engine, http.MethodGet, "/api/dashboard/failing", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	}
	assert.Equal(t, 2, api.failed)
	assert.Empty(t, api.redis.Keys())
}
