package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gamegroove/policy"
	"gamegroove/ratelimit"
)

// RateLimit enforces a per-actor request budget backed by Redis. Signed-in
// actors are keyed by user ID, anonymous ones by client IP. When Redis is
// down the middleware lets everything through.
func RateLimit(limiter *ratelimit.Limiter, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || !limiter.Available() {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if v, exists := c.Get("actor"); exists {
			if actor, ok := v.(policy.Actor); ok && actor.Authenticated() {
				key = fmt.Sprintf("user:%d", actor.UserID)
			}
		}

		allowed, remaining, err := limiter.Check(c.Request.Context(), key, maxRequests, window)

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Window", window.String())

		if err != nil || !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": fmt.Sprintf("Too many requests. Retry after %v", window),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
