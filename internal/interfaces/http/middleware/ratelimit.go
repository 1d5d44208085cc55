package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"authpanel/internal/infrastructure/ratelimit"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

// RateLimiter guards the credential endpoints with per-IP limits.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  config,
		logger:  log,
	}
}

// Limit returns a middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := rl.limiter.Allow(key, rl.config)
		if err != nil {
			// The limiter backend being down must not block all traffic.
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.RenderError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
