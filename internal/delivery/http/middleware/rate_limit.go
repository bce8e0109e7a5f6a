package middleware

import (
	"net/http"
	"strconv"
	"time"

	"grow-therapy-backend/internal/delivery/http/response"
	"grow-therapy-backend/pkg/logger"
	"grow-therapy-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles requests per client IP using the given limiter.
// When the primary limiter errors (Redis unreachable) the request falls
// back to the local limiter rather than being rejected: the throttle is
// advisory anti-abuse, not correctness-critical, so availability wins.
func RateLimit(primary ratelimit.Limiter, fallback ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		result, err := primary.Allow(c.Request.Context(), key)
		if err != nil && fallback != nil {
			logger.Log.Warn("Primary rate limiter unavailable, using local fallback", "error", err)
			result, err = fallback.Allow(c.Request.Context(), key)
		}
		if err != nil {
			// No working limiter at all. Fail open.
			logger.Log.Error("Rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining()))
		c.Header("X-RateLimit-Reset", result.ResetAt.Format(time.RFC3339))

		if !result.Allowed() {
			retryAfter := int(time.Until(result.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("Submission rate limit triggered",
				"ip", key,
				"count", result.Count,
				"path", c.FullPath(),
			)

			response.Error(c, http.StatusTooManyRequests, "Too many submissions. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
