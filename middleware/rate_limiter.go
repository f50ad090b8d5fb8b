package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// RateLimiter allows maxRequests per client IP, method and route within
// window. Without a client, or when Redis errors, requests pass through.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		ip := c.ClientIP()
		endpoint := c.FullPath() // /api/v1/store/categories/:slug/products, etc.
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"

		// Increment request count
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := client.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				logger.Warn("rate limiter window not set", zap.String("key", key), zap.Error(err))
			}
		}

		// Get stable resetAt from Redis
		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		// Calculate remaining requests (clamped at 0)
		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		// Reset in seconds (clamped at 0)
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimit{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set(models.RateLimitKey, rate)

		// If limit exceeded → block request
		if int(count) > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			return
		}

		c.Next()
	}
}
