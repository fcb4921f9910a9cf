package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"timesheet-assistant/pkg/response"
)

// RateLimit throttles requests per client IP with a token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter(ip).Allow() {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func (m Middleware) limiter(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.limiters.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(m.limit, m.burst)
	m.limiters.Add(key, l)
	return l
}
