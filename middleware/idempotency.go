package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const IdempotencyKeyHeader = "Idempotency-Key"

// idempotencyPendingTTL bounds how long a reservation outlives a request that
// never finished, so a crashed request does not lock the key for the full ttl.
const idempotencyPendingTTL = time.Minute

// IdempotencyCache is the part of *redis.Client used to remember responses.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type storedResponse struct {
	Pending bool            `json:"pending,omitempty"`
	Status  int             `json:"status,omitempty"`
	Body    json.RawMessage `json:"body,omitempty"`
}

var pendingRecord, _ = json.Marshal(storedResponse{Pending: true})

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a request repeats an
// Idempotency-Key the same caller already used within ttl. The key is reserved
// before the handler runs; a repeat that arrives while the first request is
// still in flight gets 409 with Retry-After. Requests without the header, and
// a nil cache, pass straight through. Only 2xx and 409 answers are stored so
// that transient failures can be retried.
func Idempotency(cache IdempotencyCache, ttl time.Duration) gin.HandlerFunc {
	pendingTTL := idempotencyPendingTTL
	if ttl > 0 && ttl < pendingTTL {
		pendingTTL = ttl
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if cache == nil || key == "" {
			c.Next()
			return
		}
		logger := zap.L()
		cacheKey := "idem:" + CustomerID(c) + ":" + c.FullPath() + ":" + key
		ctx := c.Request.Context()

		reserved, err := cache.SetNX(ctx, cacheKey, pendingRecord, pendingTTL).Result()
		if err != nil {
			logger.Warn("Idempotency reservation failed", zap.String("key", cacheKey), zap.Error(err))
		}
		if err == nil && !reserved {
			if replayStored(c, cache, cacheKey) {
				return
			}
			// The record expired between the two calls; run without a reservation.
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if (status < 200 || status >= 300) && status != http.StatusConflict {
			if reserved {
				if err := cache.Del(ctx, cacheKey).Err(); err != nil {
					logger.Warn("Failed to release idempotency key", zap.String("key", cacheKey), zap.Error(err))
				}
			}
			return
		}
		record, err := json.Marshal(storedResponse{Status: status, Body: writer.body.Bytes()})
		if err != nil {
			return
		}
		if err := cache.Set(ctx, cacheKey, record, ttl).Err(); err != nil {
			logger.Warn("Failed to store idempotency record", zap.String("key", cacheKey), zap.Error(err))
		}
	}
}

// replayStored answers from an existing record. It reports false when there
// is nothing usable to answer with.
func replayStored(c *gin.Context, cache IdempotencyCache, cacheKey string) bool {
	logger := zap.L()
	raw, err := cache.Get(c.Request.Context(), cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		logger.Warn("Idempotency lookup failed", zap.String("key", cacheKey), zap.Error(err))
		return false
	}

	var stored storedResponse
	if err := json.Unmarshal(raw, &stored); err != nil {
		logger.Warn("Discarding unreadable idempotency record", zap.String("key", cacheKey))
		return false
	}
	if stored.Pending {
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error": "A request with this Idempotency-Key is still being processed.",
		})
		return true
	}
	c.Header("Idempotent-Replay", "true")
	c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
	c.Abort()
	return true
}
