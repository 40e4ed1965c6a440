package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Rate limit parameters; package-level so tests can tighten them.
var (
	window = time.Minute
	limit  = 300
)

// RateLimiter applies a fixed-window request limit across the whole
// process. When the counter exceeds the limit within the current window
// the request is rejected with 429.
func RateLimiter() gin.HandlerFunc {
	var (
		mu          sync.Mutex
		count       int
		windowStart = time.Now()
	)

	return func(c *gin.Context) {
		mu.Lock()
		now := time.Now()
		if now.Sub(windowStart) > window {
			windowStart = now
			count = 0
		}
		count++
		exceeded := count > limit
		mu.Unlock()

		if exceeded {
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}
