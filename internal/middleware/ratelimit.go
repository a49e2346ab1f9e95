package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"skylift/config"
	"skylift/pkg/response"
)

// rateLimiter keeps one token bucket per principal in an expiring LRU so
// idle principals fall out of memory on their own.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	perMin := cfg.PerMinute
	if perMin <= 0 {
		perMin = 60
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = perMin / 10
		if burst == 0 {
			burst = 1
		}
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 1024
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, cfg.CacheTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit enforces the per-principal request budget. Authenticated
// requests are keyed by user; anonymous ones by client IP. On
// authenticated routes it must run after Auth, which populates the
// scope.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetScope(c).UserID
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiter.allow(key) {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
