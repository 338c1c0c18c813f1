package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskd/internal/infrastructure/ratelimit"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, config ratelimit.Config, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

// Limit enforces the per-IP request quota. Requests are allowed through
// when the limiter backend is unavailable so an outage does not take the
// API down with it.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.config)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "client_ip", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
