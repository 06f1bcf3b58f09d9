package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cachePrefix = "inmates:cache:"

// bodyWriter tees the response body so it can be stored after the handler runs
type bodyWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func cacheKey(c *gin.Context) string {
	return cachePrefix + c.Request.URL.Path + "?" + c.Request.URL.RawQuery
}

// ResponseCache serves repeated GETs from Redis for ttl. Only 200 JSON
// responses are stored. A nil client disables caching.
func ResponseCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	if rdb == nil || ttl <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		ctx := c.Request.Context()
		if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}

		w := &bodyWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Header("X-Cache", "MISS")
		c.Next()

		if w.Status() != http.StatusOK {
			return
		}
		if err := rdb.Set(context.WithoutCancel(ctx), key, w.buf.Bytes(), ttl).Err(); err != nil {
			log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// InvalidateCache drops every cached response after a successful write
func InvalidateCache(rdb *redis.Client, log *zap.Logger) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		c.Next()

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}

		ctx := context.WithoutCancel(c.Request.Context())
		iter := rdb.Scan(ctx, 0, cachePrefix+"*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			log.Warn("cache scan failed", zap.Error(err))
			return
		}
		if len(keys) == 0 {
			return
		}
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
		}
	}
}
