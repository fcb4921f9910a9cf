package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"timesheet-assistant/config"
	"timesheet-assistant/pkg/log"
)

const (
	// limiterCacheSize bounds how many client IPs are tracked at once.
	limiterCacheSize = 10000
	// limiterIdleTTL drops limiters of clients that went quiet.
	limiterIdleTTL = 10 * time.Minute
)

type Middleware struct {
	l       log.Logger
	enabled bool
	limit   rate.Limit
	burst   int

	mu       *sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = 60
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return Middleware{
		l:        l,
		enabled:  cfg.Enabled,
		limit:    rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
		mu:       &sync.Mutex{},
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
	}
}
