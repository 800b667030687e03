package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// RateLimit creates a Gin middleware limiting requests per caller.
// Machine clients sending x-api-key get a bucket per key, everyone else one per client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		key := rateLimitKey(c)

		lctx, err := limiterInstance.Get(c.Request.Context(), key)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("key", key), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			retryAfter := max(time.Until(time.Unix(lctx.Reset, 0)).Round(time.Second), time.Second)
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			logger.Warn("Rate limit exceeded", slog.String("key", key), slog.Int64("limit", lctx.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}

// rateLimitKey never uses the raw api key, so it cannot leak through store keys or logs.
func rateLimitKey(c *gin.Context) string {
	if apiKey := c.GetHeader("x-api-key"); apiKey != "" {
		sum := sha256.Sum256([]byte(apiKey))
		return "key:" + hex.EncodeToString(sum[:8])
	}
	return "ip:" + c.ClientIP()
}

// RouteRateLimit limits a single route on top of the global limit and reports
// the X-RateLimit-* headers to the caller.
func RouteRateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return limitergin.NewMiddleware(limiterInstance)
}
